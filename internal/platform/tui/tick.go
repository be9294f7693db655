// Package tui runs Chroma Dash in a terminal with Bubble Tea, locally or
// over SSH. It maps keys to game actions, drives the fixed tick loop and
// turns screen buffers into styled text.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chromadash/internal/config"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// game model that scheduled it, so a model replaced mid-flight does not
// double the tick rate of its successor.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// ReloadMsg carries a config file change from the watcher.
type ReloadMsg config.Reload

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

// waitForReload blocks on the watcher and delivers the next change.
// A closed watcher yields no message, which ends the chain.
func waitForReload(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-w.Events
		if !ok {
			return nil
		}
		return ReloadMsg(r)
	}
}

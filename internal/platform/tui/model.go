package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chromadash/internal/config"
	"github.com/vovakirdan/chromadash/internal/core"
	"github.com/vovakirdan/chromadash/internal/registry"
	"github.com/vovakirdan/chromadash/internal/runner"
	"github.com/vovakirdan/chromadash/internal/storage"
)

// descendHold is how long a descend key press counts as held.
// Terminals report presses and repeats but no releases, so the hold is
// stretched across the gap before key repeat kicks in.
const descendHold = 500 * time.Millisecond

// statusTTL is how long a status line stays in the footer.
const statusTTL = 3 * time.Second

// Options configures a game model.
type Options struct {
	Store      *storage.Store
	Logger     *log.Logger
	Watcher    *config.Watcher // Optional config file watcher
	Difficulty string          // Preset re-applied to reloaded configs
	Autopilot  bool            // Start in attract mode
	Embedded   bool            // Owned by a session; back returns to its menu
}

// runStats is implemented by games that report run length.
type runStats interface {
	Ticks() int
	Distance() float64
}

// Model is the Bubble Tea model for one game.
type Model struct {
	game       registry.Game
	gen        int
	screen     *core.Screen
	opts       Options
	log        *log.Logger
	config     core.RuntimeConfig
	randomSeed bool
	keys       GameKeyMap
	help       help.Model
	input      core.InputFrame
	descend    int // Ticks left in the emulated descend hold
	autopilot  bool
	assisted   bool // Autopilot played part of the current run
	gameState  core.GameState
	status     string
	statusLeft int
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	randomSeed := cfg.Seed == 0
	if randomSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	_, piloted := game.(registry.Piloted)
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		opts:       opts,
		log:        logger,
		config:     cfg,
		randomSeed: randomSeed,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		input:      core.NewInputFrame(),
		autopilot:  opts.Autopilot && piloted,
		assisted:   opts.Autopilot && piloted,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate, m.gen), waitForReload(m.opts.Watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()

	case ReloadMsg:
		return m.handleReload(config.Reload(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Game actions are collected into
// the input frame and applied on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Back):
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if !m.opts.Embedded {
				m.quitting = true
				return m, tea.Quit
			}
		}
	case key.Matches(msg, m.keys.Autopilot):
		if _, ok := m.game.(registry.Piloted); ok {
			m.autopilot = !m.autopilot
			m.assisted = m.assisted || m.autopilot
			m.setStatus(fmt.Sprintf("autopilot %s", onOff(m.autopilot)))
		}
	case key.Matches(msg, m.keys.Jump):
		m.input.Set(core.ActionJump)
	case key.Matches(msg, m.keys.Descend):
		m.descend = m.holdTicks()
	case key.Matches(msg, m.keys.Toggle):
		m.input.Set(core.ActionToggleColor)
	case key.Matches(msg, m.keys.Pause):
		m.input.Set(core.ActionPause)
	case key.Matches(msg, m.keys.Restart):
		if m.gameState.GameOver {
			m.input.Set(core.ActionRestart)
		}
	}
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.statusLeft > 0 {
		m.statusLeft--
	}

	if m.input.Has(core.ActionRestart) && m.gameState.GameOver {
		if m.randomSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.assisted = m.autopilot
		m.descend = 0
		m.input.Clear()
		return m, tickCmd(m.config.TickRate, m.gen)
	}

	in := m.input.Clone()
	if m.descend > 0 {
		in.Hold(core.ActionDescend)
		m.descend--
	}
	if m.autopilot {
		if p, ok := m.game.(registry.Piloted); ok {
			auto := p.AutopilotInput()
			for a, on := range auto.Actions {
				if on {
					in.Set(a)
				}
			}
			for a, on := range auto.Held {
				if on {
					in.Hold(a)
				}
			}
		}
	}

	result := m.game.Step(in)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveRun records the finished run. Runs the autopilot touched are
// not recorded.
func (m *Model) saveRun() {
	if m.opts.Store == nil || m.gameState.Score <= 0 || m.assisted {
		return
	}
	run := storage.Run{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Seed:   m.config.Seed,
	}
	if s, ok := m.game.(runStats); ok {
		run.Ticks = s.Ticks()
		run.Distance = s.Distance()
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.log.Warn("save run failed", "game", run.GameID, "err", err)
	}
}

// handleReload validates a changed config and queues it for the next run.
func (m Model) handleReload(r config.Reload) (tea.Model, tea.Cmd) {
	next := waitForReload(m.opts.Watcher)

	if r.Err != nil {
		m.log.Warn("config reload rejected", "path", r.Path, "err", r.Err)
		m.setStatus("config rejected, keeping current settings")
		return m, next
	}

	rc, ok := m.game.(registry.Reconfigurable)
	if !ok {
		return m, next
	}
	cfg, err := runner.ResolveConfig(m.game.ID(), registry.Options{Config: &r.Config, Difficulty: m.opts.Difficulty})
	if err == nil {
		err = rc.Reconfigure(cfg)
	}
	if err != nil {
		m.log.Warn("config reload rejected", "path", r.Path, "err", err)
		m.setStatus("config rejected, keeping current settings")
		return m, next
	}

	m.log.Info("config reloaded", "path", r.Path)
	m.setStatus("config reloaded, applies on restart")
	return m, next
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusLeft = int(statusTTL.Seconds() * float64(m.tickRate()))
}

func (m Model) tickRate() int {
	if m.config.TickRate <= 0 {
		return 60
	}
	return m.config.TickRate
}

func (m Model) holdTicks() int {
	return core.Max(int(descendHold.Seconds()*float64(m.tickRate())), 1)
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	dir := filepath.Join(home, ".chromadash", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return
	}
	m.setStatus("screenshot saved to " + path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := footerStyle.Render(m.help.View(m.keys))
	if m.statusLeft > 0 && m.status != "" {
		footer = statusStyle.Render(m.status)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewModel(game, cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

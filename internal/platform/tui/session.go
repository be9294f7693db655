package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chromadash/internal/config"
	"github.com/vovakirdan/chromadash/internal/core"
	"github.com/vovakirdan/chromadash/internal/registry"
	"github.com/vovakirdan/chromadash/internal/storage"
)

// SessionConfig configures a menu-driven session.
type SessionConfig struct {
	Store      *storage.Store
	Logger     *log.Logger
	ConfigPath string
	Difficulty string
	Watcher    *config.Watcher
}

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScores
)

// SessionModel manages the session flow: menu -> game or scoreboard -> menu.
// It is the top-level model for SSH sessions and `play` without a mode.
type SessionModel struct {
	cfg      SessionConfig
	log      *log.Logger
	config   core.RuntimeConfig
	current  screenKind
	menu     MenuModel
	game     *Model
	scores   *ScoreboardModel
	games    int // Game models started, used as tick generation
	quitting bool
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(cfg SessionConfig, rt core.RuntimeConfig) SessionModel {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		cfg:    cfg,
		log:    logger,
		config: rt,
		menu:   NewMenuModel(cfg.Store, rt),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return tea.Batch(m.menu.Init(), waitForReload(m.cfg.Watcher))
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	// The session owns the watch loop; games started later load the
	// file themselves.
	if r, ok := msg.(ReloadMsg); ok {
		if m.current == screenGame {
			next, _ := m.game.handleReload(config.Reload(r))
			if game, ok := next.(Model); ok {
				m.game = &game
			}
		}
		return m, waitForReload(m.cfg.Watcher)
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		sb := NewScoreboardModel(m.cfg.Store, "", m.config.ScreenW, m.config.ScreenH, m.config.TickRate, true)
		m.scores = &sb
		m.current = screenScores
		return m, sb.Init()

	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().GameID)
	}

	return m, cmd
}

func (m SessionModel) startGame(id string) (tea.Model, tea.Cmd) {
	opts := registry.Options{
		ConfigPath: m.cfg.ConfigPath,
		Difficulty: m.cfg.Difficulty,
		Logger:     m.log,
	}
	if m.cfg.Store != nil {
		opts.Store = m.cfg.Store
	}

	game, err := registry.Create(id, opts)
	if err != nil {
		m.log.Error("cannot start game", "game", id, "err", err)
		m.menu = NewMenuModel(m.cfg.Store, m.config)
		return m, nil
	}

	m.games++
	model := NewModel(game, m.config, Options{
		Store:      m.cfg.Store,
		Logger:     m.log,
		Difficulty: m.cfg.Difficulty,
		Embedded:   true,
	})
	model.gen = m.games
	m.game = &model
	m.current = screenGame
	return m, model.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = &game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.game = nil
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scores = &sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.scores = nil
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.menu = NewMenuModel(m.cfg.Store, m.config)
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(cfg SessionConfig, rt core.RuntimeConfig) error {
	p := tea.NewProgram(NewSessionModel(cfg, rt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

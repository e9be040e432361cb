package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/handheld-arcade/internal/core"
	"github.com/vovakirdan/handheld-arcade/internal/registry"
)

type screenKind int

const (
	screenMenu screenKind = iota
	screenGame
	screenScores
)

// SessionModel is the whole console in one Bubble Tea program:
// selector -> game -> selector, with the scoreboard one tab away.
// Local `arcade menu` and every SSH session run one.
type SessionModel struct {
	store  Scores
	logger *log.Logger
	config core.RuntimeConfig
	user   string

	screen     screenKind
	menu       MenuModel
	game       GameModel
	scoreboard ScoreboardModel
	last       string
	gen        int
	quitting   bool
}

// NewSessionModel creates a session starting on the selector. store and
// logger may be nil.
func NewSessionModel(store Scores, logger *log.Logger, cfg core.RuntimeConfig, user string) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		store:  store,
		logger: logger,
		config: cfg,
		user:   user,
		menu:   NewMenuModel(store, cfg, "", ""),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.screen = screenScores
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH, m.menu.Current())
		return m, m.scoreboard.Init()

	case m.menu.Chosen() != "":
		return m.startGame(m.menu.Chosen())
	}

	// The menu quits its own program on a choice; inside a session that
	// command is dropped above.
	return m, cmd
}

func (m SessionModel) startGame(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		m.logger.Error("cannot start game", "game", id, "error", err)
		m.menu = NewMenuModel(m.store, m.config, id, m.last)
		return m, nil
	}

	m.logger.Info("game started", "user", m.user, "game", id)
	m.gen++
	m.last = id
	m.screen = screenGame
	m.game = NewGameModel(game, m.store, m.logger, m.config).WithGeneration(m.gen)
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.Exited() {
		m.logger.Info("game left", "user", m.user, "game", m.last, "score", m.game.State().Score)
		m.screen = screenMenu
		m.menu = NewMenuModel(m.store, m.config, m.last, m.last)
		return m, m.menu.Init()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.screen = screenMenu
		m.menu = NewMenuModel(m.store, m.config, m.scoreboard.Game(), m.last)
		return m, m.menu.Init()
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// Screen reports which screen is active, for tests.
func (m SessionModel) Screen() string {
	switch m.screen {
	case screenGame:
		return "game"
	case screenScores:
		return "scores"
	default:
		return "menu"
	}
}

// RunConsole runs the full console locally.
func RunConsole(store Scores, logger *log.Logger, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(store, logger, cfg, "local"),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

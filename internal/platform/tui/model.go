package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/handheld-arcade/internal/core"
	"github.com/vovakirdan/handheld-arcade/internal/registry"
	"github.com/vovakirdan/handheld-arcade/internal/storage"
)

// ScoreKeeper is the part of the score store the game runner needs.
type ScoreKeeper interface {
	SaveScore(gameID string, score int, newHigh bool) (int64, error)
	HighScore(gameID string) (int, error)
}

// ScoreReader is the part of the score store the scoreboard needs.
type ScoreReader interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
	HighScore(gameID string) (int, error)
}

// Scores is everything the console reads from and writes to the store.
type Scores interface {
	ScoreKeeper
	ScoreReader
}

var _ Scores = (*storage.Store)(nil)

// GameModel runs one console game: it feeds key presses to the game as
// input frames, steps it at the tick rate and records finished rounds.
//
// After a round ends, and once the hold-off has passed, the left button
// plays again and any other button leaves the game.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     ScoreKeeper
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	input     core.InputFrame
	state     core.GameState
	gen       int
	hold      int // ticks left during which buttons are ignored after a crash

	width, height int
	status        string
	shotDir       string

	standalone bool // quit the program on exit instead of returning to the selector
	quitting   bool
	exited     bool
	scoreSaved bool
}

// NewGameModel creates a runner for game. store and logger may be nil.
func NewGameModel(game registry.Game, store ScoreKeeper, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(core.ConsoleW, core.ConsoleH),
		store:     store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		input:     core.NewInputFrame(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		shotDir:   ScreenshotDir(),
	}
}

// WithGeneration tags the runner's ticks; see TickMsg.
func (m GameModel) WithGeneration(gen int) GameModel {
	m.gen = gen
	return m
}

// Init resets the game, seeds its best score from the store and starts ticking.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.store != nil {
		high, err := m.store.HighScore(m.game.ID())
		if err != nil {
			m.logger.Warn("could not load high score", "game", m.game.ID(), "error", err)
		} else {
			m.game.SetHighScore(high)
		}
	}
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen || m.exited || m.quitting {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.screenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit || action == core.ActionBack {
		return m.exit()
	}

	if m.state.GameOver {
		if m.hold > 0 {
			return m, nil
		}
		switch {
		case action == core.ActionLeft, action == core.ActionRestart:
			m.input.Set(core.ActionRestart)
		case action.IsButton(), action == core.ActionConfirm:
			return m.exit()
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

func (m GameModel) exit() (tea.Model, tea.Cmd) {
	m.exited = true
	if m.standalone {
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input)
	m.input.Clear()
	m.state = result.State

	if !m.state.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
		m.hold = m.config.TickRate
	} else if m.hold > 0 {
		m.hold--
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveScore records a finished round. Failures are logged and play goes on.
func (m *GameModel) saveScore() {
	if m.store == nil || m.state.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.state.Score, m.state.NewHighScore); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "score", m.state.Score, "error", err)
		return
	}
	m.logger.Debug("round saved", "game", m.game.ID(), "score", m.state.Score, "new_high", m.state.NewHighScore)
}

func (m *GameModel) screenshot() {
	path, err := SaveScreenshot(m.shotDir, m.game.ID(), m.game.Display())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || (m.exited && m.standalone) {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return place(RenderScreen(m.screen), m.status, m.width, m.height)
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Exited reports whether the player left the game.
func (m GameModel) Exited() bool {
	return m.exited
}

// Run plays a single game in the terminal until the player leaves it.
func Run(game registry.Game, store ScoreKeeper, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, logger, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

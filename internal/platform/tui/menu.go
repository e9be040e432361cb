package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/handheld-arcade/internal/core"
	"github.com/vovakirdan/handheld-arcade/internal/registry"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	selectedGameStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("16")).
				Background(lipgloss.Color("51")).
				Padding(0, 2)

	slotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)
)

// MenuModel is the console selector. One game is shown at a time; left and
// right cycle through them in slot order.
type MenuModel struct {
	games     []registry.GameInfo
	current   string // game under the cursor
	last      string // game played most recently, empty before the first
	store     ScoreReader
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	chosen         string
	openScoreboard bool
	quitting       bool
}

// NewMenuModel creates a selector showing current. last is the game the
// up button replays. store may be nil.
func NewMenuModel(store ScoreReader, cfg core.RuntimeConfig, current, last string) MenuModel {
	games := registry.List()
	if !registry.Exists(current) && len(games) > 0 {
		current = games[0].ID
	}

	return MenuModel{
		games:     games,
		current:   current,
		last:      last,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionPrev:
		m.current = registry.Cycle(m.current, -1)

	case MenuActionNext:
		m.current = registry.Cycle(m.current, 1)

	case MenuActionPlay:
		if m.current != "" {
			m.chosen = m.current
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionPlayLast:
		if m.last != "" {
			m.chosen = m.last
			m.current = m.last
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the selector.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	width := max(m.config.ScreenW, core.ConsoleW)
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("H A N D H E L D   A R C A D E"), width))
	b.WriteString("\n\n")

	title := strings.ToUpper(m.current)
	if info, ok := registry.Info(m.current); ok {
		title = strings.ToUpper(info.Title)
	}
	b.WriteString(centerText("<  "+selectedGameStyle.Render(title)+"  >", width))
	b.WriteString("\n\n")

	slots := make([]string, len(m.games))
	for i, g := range m.games {
		marker := " "
		if g.ID == m.current {
			marker = "*"
		}
		slots[i] = slotStyle.Render(marker + g.Title)
	}
	b.WriteString(centerText(strings.Join(slots, ""), width))
	b.WriteString("\n\n")

	if m.store != nil {
		if high, err := m.store.HighScore(m.current); err == nil {
			b.WriteString(centerText(fmt.Sprintf("Best: %d", high), width))
			b.WriteString("\n")
		}
	}
	if info, ok := registry.Info(m.last); ok {
		b.WriteString(centerText("Up: play "+info.Title+" again", width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Left/Right: choose  |  Down/Enter: play  |  Tab: scores  |  Q: quit"
	b.WriteString(centerText(footerStyle.Render(controls), width))
	b.WriteString("\n")

	return b.String()
}

// Current returns the game under the cursor.
func (m MenuModel) Current() string {
	return m.current
}

// Chosen returns the game the player picked, or empty if none.
func (m MenuModel) Chosen() string {
	return m.chosen
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

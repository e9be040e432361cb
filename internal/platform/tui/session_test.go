package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/handheld-arcade/internal/core"
	"github.com/vovakirdan/handheld-arcade/internal/storage"
)

func send(m SessionModel, msgs ...tea.Msg) SessionModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}
	return m
}

func TestSessionFlow(t *testing.T) {
	store, err := storage.Open(storage.Memory)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 9}
	m := NewSessionModel(store, nil, cfg, "tester")
	if m.Screen() != "menu" {
		t.Fatalf("Expected menu, got %s", m.Screen())
	}

	m = send(m, keyRight, keyDown)
	if m.Screen() != "game" {
		t.Fatalf("Expected game, got %s", m.Screen())
	}
	if !strings.Contains(m.View(), "TETRIS") {
		t.Error("Tetris start screen not shown")
	}

	m = send(m, runeKey('q'))
	if m.Screen() != "menu" {
		t.Fatalf("q should return to the menu, got %s", m.Screen())
	}
	if m.menu.Current() != "tetris" {
		t.Errorf("Selector should stay on tetris, got %s", m.menu.Current())
	}

	// Up replays the last game.
	m = send(m, keyRight, keyUp)
	if m.Screen() != "game" || m.last != "tetris" {
		t.Errorf("Up should replay tetris, screen=%s last=%s", m.Screen(), m.last)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyTab})
	if m.Screen() != "scores" {
		t.Fatalf("Tab should open scores, got %s", m.Screen())
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Screen() != "menu" {
		t.Errorf("Esc should leave the scoreboard, got %s", m.Screen())
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting {
		t.Error("ctrl+c should quit the session")
	}
}

func TestSessionIgnoresOldTicks(t *testing.T) {
	m := NewSessionModel(nil, nil, core.DefaultConfig(), "tester")
	m = send(m, keyDown)
	first := m.gen
	m = send(m, runeKey('q'), keyDown)
	if m.gen == first {
		t.Fatal("Each game should get a new tick generation")
	}
	g := m.game.game
	before := g.State()
	m = send(m, TickMsg{Gen: first})
	if m.game.game.State() != before {
		t.Error("A tick from the previous game changed the new one")
	}
}

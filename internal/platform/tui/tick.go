// Package tui runs the console in a terminal: the game selector, the game
// runner and the scoreboard, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// runner that asked for it, so a tick still in flight when a game is left
// does not drive the next one.
type TickMsg struct {
	At  time.Time
	Gen int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}

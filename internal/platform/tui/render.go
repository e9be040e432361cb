package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/handheld-arcade/internal/core"
)

var (
	hudStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	panelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Background(lipgloss.Color("16"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	bezelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)
)

// RenderScreen frames a console screen: the first row is the HUD, the last
// row the hint line, and everything between is the panel.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, 0, s.Height())
	for y, h := 0, s.Height(); y < h; y++ {
		line := s.Row(y)
		switch y {
		case 0:
			rows = append(rows, hudStyle.Render(line))
		case s.Height() - 1:
			rows = append(rows, footerStyle.Render(line))
		default:
			rows = append(rows, panelStyle.Render(line))
		}
	}
	return bezelStyle.Render(strings.Join(rows, "\n"))
}

// place centres a rendered frame in the terminal and adds an optional status
// line under it. A zero size leaves the frame unplaced.
func place(frame, status string, width, height int) string {
	if status != "" {
		frame = lipgloss.JoinVertical(lipgloss.Center, frame, statusStyle.Render(status))
	}
	if width <= 0 || height <= 0 {
		return frame
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, frame)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

package tetris

import (
	"fmt"

	"github.com/vovakirdan/handheld-arcade/internal/core"
)

// Board placement on the panel: 3-pixel cells right of centre.
const (
	cellPx   = 3
	boardX   = core.DisplayW/2 + 1
	boardY   = 2 // gap between row 0 and the panel bottom
	frameX   = core.DisplayW / 2
	previewX = 40
	previewY = 36
)

// cellRect returns the top-left panel pixel of board cell (col, row).
func cellRect(col, row int) (x, y int) {
	return boardX + col*cellPx, core.DisplayH - boardY - cellPx - row*cellPx + 1
}

func drawBoard(s core.Surface, e *Engine) {
	s.DrawFrame(frameX, 1, Cols*cellPx+2, Rows*cellPx+3)

	grid := e.Grid()
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if grid[row][col] {
				x, y := cellRect(col, row)
				s.DrawBox(x, y, cellPx, cellPx)
			}
		}
	}

	if p, live := e.Active(); live {
		for _, o := range Cells(p.Kind, p.Rot) {
			row := p.Y + o.DY
			if row >= Rows {
				continue
			}
			x, y := cellRect(p.X+o.DX, row)
			s.DrawBox(x, y, cellPx, cellPx)
		}
	}

	s.DrawFrame(previewX, previewY, 20, 14)
	ox, oy := previewX+8, previewY+5
	for _, o := range Cells(e.Next(), RotNone) {
		s.DrawBox(ox+o.DX*2, oy-o.DY*2, 2, 2)
	}
}

// titleMap is the stacked-blocks picture of the start screen, bottom row first.
var titleMap = [10]string{
	"###..#####",
	"########.#",
	"#.########",
	"...#######",
	"......####",
	".......###",
	".........#",
	"...#.....#",
	"..###.....",
	"..........",
}

func drawStart(s core.Surface) {
	const ox, oy, size = 49, 17, 3
	for row, line := range titleMap {
		for col, c := range line {
			if c == '#' {
				s.DrawBox(ox+col*size, oy+9*size-row*size, size, size)
			}
		}
	}
}

func drawEnd(s core.Surface) {
	s.DrawFrame(0, 0, core.DisplayW, core.DisplayH)
	s.DrawFrame(2, 2, core.DisplayW-4, core.DisplayH-4)
}

// Render draws the current phase onto the panel and the console screen.
func (g *Game) Render(dst *core.Screen) {
	d := g.display
	e := g.engine
	d.Clear()

	switch {
	case g.round.Waiting():
		drawStart(d)
	case g.round.Over():
		drawEnd(d)
	default:
		drawBoard(d, e)
	}
	d.Flush()

	hud := fmt.Sprintf("TETRIS  Score %d  Speed %d  Best %d", e.Score(), e.Speed(), g.round.High())
	d.Present(dst, hud, g.round.Footer())

	switch {
	case g.round.Waiting():
		dst.DrawTextCentered(2, "T E T R I S")
	case g.round.Over():
		title := "Game Over"
		if g.round.State(e.Score()).NewHighScore {
			title = "New High Score!"
		}
		dst.DrawTextCentered(4, title)
		dst.DrawTextCentered(7, fmt.Sprintf("Score: %d", e.Score()))
		dst.DrawTextCentered(9, fmt.Sprintf("Best: %d", g.round.High()))
		dst.DrawTextCentered(13, "< Play Again     Exit >")
	default:
		dst.DrawText(21, 2, "SCORE")
		dst.DrawText(21, 3, fmt.Sprintf("%d", e.Score()))
		dst.DrawText(21, 5, "SPEED")
		dst.DrawText(21, 6, fmt.Sprintf("%d", e.Speed()))
		dst.DrawText(21, 8, "NEXT")
		if c := e.LastClear(); c.Count > 0 && c.Award > 0 {
			dst.DrawText(2, 4, fmt.Sprintf("+%d", c.Award))
			if e.Multiplier() > 1 {
				dst.DrawText(2, 5, fmt.Sprintf("x%d combo", e.Multiplier()))
			}
		}
	}
}

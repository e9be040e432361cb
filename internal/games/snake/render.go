package snake

import (
	"fmt"

	"github.com/vovakirdan/handheld-arcade/internal/core"
)

// Board placement on the panel. Cells are 4×4 pixels and board y grows upward.
const (
	cellPx  = 4
	boardX  = (core.DisplayW-cellPx*Width)/2 - 1
	boardY  = 4 // distance of row 0 from the panel bottom
	boardPW = cellPx * Width
	boardPH = cellPx * Height
)

// plot lights sub-pixel (u, v) of the board, wrapping at the board edges so
// joints drawn across an edge reappear on the other side.
func plot(s core.Surface, u, v int) {
	u = core.Wrap(u, boardPW)
	v = core.Wrap(v, boardPH)
	s.SetPixel(boardX+u, core.DisplayH-1-(boardY+v))
}

// block fills a w×h run of sub-pixels whose lower-left corner is (u, v).
func block(s core.Surface, u, v, w, h int) {
	for dv := 0; dv < h; dv++ {
		for du := 0; du < w; du++ {
			plot(s, u+du, v+dv)
		}
	}
}

// sprite draws rows of '#' art with its top-left at panel pixel (x, y).
func sprite(s core.Surface, x, y int, rows []string) {
	for dy, row := range rows {
		for dx, c := range row {
			if c == '#' {
				s.SetPixel(x+dx, y+dy)
			}
		}
	}
}

var animalSprites = [...][]string{
	Lizard: {
		".#.#.#..",
		"#.#####.",
		"########",
		"..#..#..",
	},
	Crab: {
		"..####..",
		"########",
		"#.####.#",
		"#.#..#.#",
	},
	Fish: {
		"##...#..",
		"##..###.",
		"..######",
		"....#.#.",
	},
}

// drawBoard renders the frame, food and snake of e.
func drawBoard(s core.Surface, e *Engine) {
	left, right := boardX-1, boardX+boardPW
	bottom := core.DisplayH - boardY + 1
	top := bottom - boardPH - 3
	s.DrawFrame(left, top, right-left+1, bottom-top+1)
	s.DrawLine(left, top-2, right, top-2)

	if a := e.Apple(); !a.IsNone() {
		u, v := a.X*cellPx+1, a.Y*cellPx+1
		plot(s, u, v)
		plot(s, u+2, v)
		plot(s, u+1, v-1)
		plot(s, u+1, v+1)
	}

	if a := e.Animal(); !a.IsNone() {
		x := boardX + a.X*cellPx
		y := core.DisplayH - 1 - (boardY + a.Y*cellPx + 3)
		sprite(s, x, y, animalSprites[e.AnimalKind()])
	}

	drawSnake(s, e)
}

func drawSnake(s core.Surface, e *Engine) {
	segs := e.Segments()
	for i, seg := range segs {
		u, v := seg.Pos.X*cellPx+1, seg.Pos.Y*cellPx+1
		switch {
		case i == 0:
			block(s, u-1, v-1, 4, 4)
		case seg.Eaten:
			block(s, u-1, v-1, 4, 4)
			s.SetDrawColor(false)
			block(s, u, v, 2, 2)
			s.SetDrawColor(true)
		default:
			block(s, u, v, 2, 2)
		}
		if i == len(segs)-1 {
			continue
		}
		// Bridge the gap toward the next segment.
		dx, dy := seg.Next.Delta()
		block(s, u+dx*2, v+dy*2, 2, 2)
	}

	head := segs[0].Pos
	u, v := head.X*cellPx+1, head.Y*cellPx+1
	open := e.AppleInFront()
	s.SetDrawColor(false)
	switch e.Heading() {
	case Right:
		if open {
			block(s, u+2, v, 1, 2)
		} else {
			plot(s, u+1, v+1)
		}
	case Left:
		if open {
			block(s, u-1, v, 1, 2)
		} else {
			plot(s, u, v+1)
		}
	case Up:
		if open {
			block(s, u, v+2, 2, 1)
		} else {
			plot(s, u, v+1)
		}
	case Down:
		if open {
			block(s, u, v-1, 2, 1)
		} else {
			plot(s, u, v)
		}
	}
	s.SetDrawColor(true)
}

func drawStart(s core.Surface) {
	s.DrawFrame(0, 0, core.DisplayW, core.DisplayH)
	// A coiled snake under the title.
	for i := 0; i < 9; i++ {
		s.DrawBox(28+i*8, 40, 6, 3)
	}
	s.DrawBox(92, 32, 3, 11)
	s.DrawBox(92, 30, 8, 3)
	s.SetDrawColor(false)
	s.SetPixel(97, 31)
	s.SetDrawColor(true)
}

func drawEnd(s core.Surface) {
	s.DrawFrame(0, 0, core.DisplayW, core.DisplayH)
	s.DrawFrame(2, 2, core.DisplayW-4, core.DisplayH-4)
}

// Render draws the current phase onto the panel and the console screen.
func (g *Game) Render(dst *core.Screen) {
	d := g.display
	d.Clear()

	switch {
	case g.round.Waiting():
		drawStart(d)
	case g.round.Over():
		drawEnd(d)
	default:
		drawBoard(d, g.engine)
	}
	d.Flush()

	hud := fmt.Sprintf("SNAKE  Score %d  Best %d", g.engine.Score(), g.round.High())
	if t := g.engine.AnimalTimer(); t > 0 && !g.engine.Animal().IsNone() {
		hud += fmt.Sprintf("  Bonus %02d", t)
	}
	d.Present(dst, hud, g.round.Footer())

	switch {
	case g.round.Waiting():
		dst.DrawTextCentered(4, "S N A K E")
	case g.round.Over():
		title := "Game Over"
		if g.round.State(g.engine.Score()).NewHighScore {
			title = "New High Score!"
		}
		dst.DrawTextCentered(4, title)
		dst.DrawTextCentered(7, fmt.Sprintf("Score: %d", g.engine.Score()))
		dst.DrawTextCentered(9, fmt.Sprintf("Best: %d", g.round.High()))
		dst.DrawTextCentered(13, "< Play Again     Exit >")
	}
}

package flappy

import (
	"fmt"

	"github.com/vovakirdan/handheld-arcade/internal/core"
)

// stroke is one horizontal run of the bird sprite, relative to BirdX and to
// the bird's height.
type stroke struct {
	dy, x0, x1 int
}

var wingsUpSprite = []stroke{
	{-1, -4, 1}, {-1, 2, 5},
	{0, -8, 3}, {0, 4, 7},
	{1, -5, 0}, {1, 2, 5},
	{2, -6, -1},
	{3, -8, -2},
}

var wingsDownSprite = []stroke{
	{-3, -8, -2},
	{-2, -6, -1},
	{-1, -5, 0}, {-1, 2, 5},
	{0, -4, 3}, {0, 4, 7},
	{1, -8, 1}, {1, 2, 5},
}

// panelY converts a height above the bottom edge to a panel row.
func panelY(h int) int {
	return ScreenH - h
}

func drawBird(s core.Surface, height, velocity float64) {
	sprite := wingsDownSprite
	if WingsUp(velocity) {
		sprite = wingsUpSprite
	}
	h := int(height)
	for _, st := range sprite {
		row := h + st.dy
		if row < 0 || row > ScreenH-1 {
			continue
		}
		y := panelY(row)
		s.DrawLine(BirdX+st.x0, y, BirdX+st.x1, y)
	}
}

func drawPipe(s core.Surface, x, gapBottom int) {
	yb := panelY(gapBottom)
	s.DrawLine(x-2, yb, x+2, yb)
	s.DrawLine(x-3, yb, x-3, yb+4)
	s.DrawLine(x+3, yb, x+3, yb+4)
	s.DrawLine(x-2, yb+4, x-2, ScreenH)
	s.DrawLine(x+2, yb+4, x+2, ScreenH)

	yt := panelY(gapBottom+GapHeight) + 1
	s.DrawLine(x-2, yt, x+2, yt)
	s.DrawLine(x-3, yt, x-3, yt-4)
	s.DrawLine(x+3, yt, x+3, yt-4)
	s.DrawLine(x-2, yt-4, x-2, 0)
	s.DrawLine(x+2, yt-4, x+2, 0)
}

func drawField(s core.Surface, e *Engine) {
	pipes := e.Pipes()
	for i, gap := range pipes {
		if gap == NoPipe {
			continue
		}
		drawPipe(s, e.PipeX(i), gap)
	}
	drawBird(s, e.Height(), e.Velocity())
}

// Seven-segment digits, 6 pixels wide and 11 tall.
const (
	segA = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG
)

var digitSegments = [10]int{
	segA | segB | segC | segD | segE | segF,
	segB | segC,
	segA | segB | segD | segE | segG,
	segA | segB | segC | segD | segG,
	segB | segC | segF | segG,
	segA | segC | segD | segF | segG,
	segA | segC | segD | segE | segF | segG,
	segA | segB | segC,
	segA | segB | segC | segD | segE | segF | segG,
	segA | segB | segC | segD | segF | segG,
}

func drawDigit(s core.Surface, cx, cy, d int) {
	segs := digitSegments[d]
	if segs&segA != 0 {
		s.DrawLine(cx+1, cy, cx+5, cy)
	}
	if segs&segB != 0 {
		s.DrawLine(cx+5, cy+1, cx+5, cy+5)
	}
	if segs&segC != 0 {
		s.DrawLine(cx+5, cy+6, cx+5, cy+10)
	}
	if segs&segD != 0 {
		s.DrawLine(cx+1, cy+10, cx+5, cy+10)
	}
	if segs&segE != 0 {
		s.DrawLine(cx, cy+6, cx, cy+10)
	}
	if segs&segF != 0 {
		s.DrawLine(cx, cy+1, cx, cy+5)
	}
	if segs&segG != 0 {
		s.DrawLine(cx+1, cy+5, cx+5, cy+5)
	}
}

// digitColumns are the x positions of the hundreds, tens and units digits.
var digitColumns = [3]int{91, 99, 107}

// drawNumber draws n right-aligned in three digit columns, without leading
// zeros. Values above 999 show their last three digits.
func drawNumber(s core.Surface, y, n int) {
	n %= 1000
	for i := len(digitColumns) - 1; i >= 0; i-- {
		drawDigit(s, digitColumns[i], y, n%10)
		n /= 10
		if n == 0 {
			return
		}
	}
}

func drawEnd(s core.Surface, score, best int, medal Medal) {
	s.DrawFrame(0, 0, core.DisplayW, core.DisplayH)
	drawNumber(s, 18, score)
	drawNumber(s, 34, best)

	s.DrawCircle(20, 32, 13)
	// Inner rings mark the medal grade.
	for r := 0; r < int(medal); r++ {
		s.DrawCircle(20, 32, 10-3*r)
	}
}

func drawStart(s core.Surface) {
	drawBird(s, ScreenH/2, 0)
	drawPipe(s, 90, 20)
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
		drawEnd(d, e.Score(), g.round.High(), g.Medal())
	default:
		drawField(d, e)
	}
	d.Flush()

	hud := fmt.Sprintf("FLAPPY  Score %d  Best %d", e.Score(), g.round.High())
	d.Present(dst, hud, g.round.Footer())

	switch {
	case g.round.Waiting():
		dst.DrawTextCentered(2, "F L A P P Y")
		dst.DrawTextCentered(14, "Up to flap")
	case g.round.Over():
		title := "Game Over"
		if g.round.State(e.Score()).NewHighScore {
			title = "New Best!"
		}
		dst.DrawText(30, 3, title)
		dst.DrawText(30, 5, "SCORE")
		dst.DrawText(30, 9, "BEST")
		dst.DrawText(2, 13, g.Medal().String())
	}
}

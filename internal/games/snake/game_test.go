package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/handheld-arcade/internal/core"
)

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, TickRate: 60})
	return g
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	for i := 0; i < 400; i++ {
		in := core.NewInputFrame()
		switch i {
		case 0:
			in.Set(core.ActionUp) // start
		case 40:
			in.Set(core.ActionDown)
		case 90:
			in.Set(core.ActionLeft)
		case 160:
			in.Set(core.ActionUp)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("Snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestStartScreenConsumesPress(t *testing.T) {
	g := newTestGame(1)
	if !g.State().Waiting {
		t.Fatal("Expected start screen after Reset")
	}

	res := g.Step(frame(core.ActionLeft))
	if res.Stepped || g.Engine().Moves() != 0 {
		t.Error("Start press must not move the snake")
	}
	if g.State().Waiting {
		t.Error("Start press should begin the round")
	}

	every := g.round.Every()
	for i := 0; i < every; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Engine().Moves() != 1 {
		t.Errorf("Expected one move after %d ticks, got %d", every, g.Engine().Moves())
	}
	if g.Engine().Heading() != Right {
		t.Errorf("Start press leaked into the round: heading %v", g.Engine().Heading())
	}
}

func TestStepTiming(t *testing.T) {
	g := newTestGame(1)
	// 50 ms at 60 ticks per second.
	if got := g.round.Every(); got != 3 {
		t.Errorf("Expected a move every 3 ticks, got %d", got)
	}
}

func TestHighScoreSurvivesReset(t *testing.T) {
	g := newTestGame(1)
	g.SetHighScore(5)
	g.Step(frame(core.ActionUp))

	e := g.Engine()
	setBody(e, Left, core.Pt(0, 0), core.Pt(1, 0), core.Pt(1, 1), core.Pt(0, 1))
	e.score = 14
	e.apple = core.Pt(10, 8)

	for i := 0; i < g.round.Every() && !g.State().GameOver; i++ {
		g.Step(frame(core.ActionUp))
	}
	st := g.State()
	if !st.GameOver || !st.NewHighScore || st.HighScore != 14 {
		t.Fatalf("Expected new high score 14, got %+v", st)
	}

	g.Reset(core.RuntimeConfig{Seed: 2, TickRate: 60})
	if st := g.State(); st.HighScore != 14 || st.GameOver || st.Score != 0 {
		t.Errorf("Reset should keep the best only, got %+v", st)
	}
}

func TestRestartAndPause(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Expected paused")
	}
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Engine().Moves() != 0 {
		t.Error("Paused game must not move")
	}

	g.Step(frame(core.ActionRestart))
	if st := g.State(); !st.Waiting || st.Paused {
		t.Errorf("Restart should return to the start screen, got %+v", st)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(1)
	dst := core.NewScreen(core.ConsoleW, core.ConsoleH)

	g.Render(dst)
	if !strings.Contains(dst.Row(0), "SNAKE") {
		t.Errorf("HUD missing title: %q", dst.Row(0))
	}
	if g.Display().Frames() != 1 || g.Display().LitCount() == 0 {
		t.Error("Start screen should publish a frame")
	}

	g.Step(frame(core.ActionUp))
	dst.Clear()
	g.Render(dst)
	head := g.Engine().Head()
	px := boardX + head.X*cellPx + 1
	py := core.DisplayH - 1 - (boardY + head.Y*cellPx + 1)
	if !g.Display().Pixel(px, py) {
		t.Errorf("Head pixel (%d,%d) should be lit", px, py)
	}
	if !strings.Contains(dst.Row(core.ConsoleH-1), "pause") {
		t.Errorf("Footer should show controls, got %q", dst.Row(core.ConsoleH-1))
	}
}

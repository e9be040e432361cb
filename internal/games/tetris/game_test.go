package tetris

import (
	"strings"
	"testing"

	"github.com/vovakirdan/handheld-arcade/internal/config"
	"github.com/vovakirdan/handheld-arcade/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, TickRate: 60})
	return g
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(777)
	g2 := newTestGame(777)

	for i := 0; i < 2000; i++ {
		in := core.NewInputFrame()
		switch {
		case i == 0:
			in.Set(core.ActionDown)
		case i%37 == 0:
			in.Set(core.ActionLeft)
		case i%53 == 0:
			in.Set(core.ActionUp)
		case i%71 == 0:
			in.Set(core.ActionRight)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("Snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestRulesFromConfig(t *testing.T) {
	tests := []struct {
		preset      config.DifficultyPreset
		speed       int
		progression bool
	}{
		{"", 1, true},
		{config.DifficultyEasy, 1, true},
		{config.DifficultyNormal, 2, true},
		{config.DifficultyHard, 4, true},
		{config.DifficultyFixed, 1, false},
	}
	for _, tc := range tests {
		cfg := config.DefaultTetrisConfig()
		config.ApplyPreset(&cfg.Difficulty, tc.preset)
		r := rulesFrom(cfg)
		if r.StartSpeed != tc.speed || r.Progression != tc.progression {
			t.Errorf("preset %q: got speed %d progression %v", tc.preset, r.StartSpeed, r.Progression)
		}
		if r.Awards != [4]int{100, 300, 600, 1000} {
			t.Errorf("preset %q: awards %v", tc.preset, r.Awards)
		}
	}
}

func TestStartScreenAndTiming(t *testing.T) {
	g := newTestGame(1)
	if !g.State().Waiting {
		t.Fatal("Expected start screen")
	}
	before, _ := g.Engine().Active()

	g.Step(frame(core.ActionLeft))
	if p, _ := g.Engine().Active(); p != before {
		t.Error("Start press must not move the piece")
	}
	// 60 ms at 60 ticks per second.
	if got := g.round.Every(); got != 4 {
		t.Errorf("Expected a step every 4 ticks, got %d", got)
	}
}

func TestGameOverRecordsBest(t *testing.T) {
	g := newTestGame(1)
	g.SetHighScore(300)
	g.Step(frame(core.ActionUp))

	e := g.Engine()
	e.live = false
	e.next = Square
	e.score = 200
	e.grid[SpawnY][SpawnX] = true

	for i := 0; i < g.round.Every(); i++ {
		g.Step(core.NewInputFrame())
	}
	st := g.State()
	if !st.GameOver || st.NewHighScore || st.HighScore != 300 {
		t.Errorf("Expected game over without a new best, got %+v", st)
	}

	dst := core.NewScreen(core.ConsoleW, core.ConsoleH)
	g.Render(dst)
	if !strings.Contains(dst.String(), "Best: 300") {
		t.Error("End screen should show the best score")
	}
}

func TestRenderDrawsPieces(t *testing.T) {
	g := newTestGame(4)
	g.Step(frame(core.ActionUp))
	g.Engine().grid[0][0] = true

	dst := core.NewScreen(core.ConsoleW, core.ConsoleH)
	g.Render(dst)

	x, y := cellRect(0, 0)
	if !g.Display().Pixel(x+1, y+1) {
		t.Errorf("Locked cell (0,0) not drawn at (%d,%d)", x, y)
	}
	p, _ := g.Engine().Active()
	o := Cells(p.Kind, p.Rot)[0]
	x, y = cellRect(p.X+o.DX, p.Y+o.DY)
	if !g.Display().Pixel(x, y) {
		t.Errorf("Active piece cell not drawn at (%d,%d)", x, y)
	}
	if !strings.Contains(dst.Row(0), "TETRIS") {
		t.Errorf("HUD missing title: %q", dst.Row(0))
	}
}

package flappy

import (
	"os"
	"path/filepath"
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

// flapper keeps the bird near mid-screen.
func flapper(g *Game) core.InputFrame {
	if g.Engine().Height() < 30 {
		return frame(core.ActionUp)
	}
	return core.NewInputFrame()
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(5)
	g2 := newTestGame(5)

	g1.Step(frame(core.ActionUp))
	g2.Step(frame(core.ActionUp))
	for i := 0; i < 1500; i++ {
		in := flapper(g1)
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("Snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestStartScreenAndTiming(t *testing.T) {
	g := newTestGame(1)
	if !g.State().Waiting {
		t.Fatal("Expected start screen")
	}
	if res := g.Step(frame(core.ActionUp)); res.Stepped || g.Engine().Velocity() != 0 {
		t.Error("Start press must not flap")
	}
	// 40 ms at 60 ticks per second.
	if got := g.round.Every(); got != 2 {
		t.Errorf("Expected a step every 2 ticks, got %d", got)
	}
}

func TestOnlyUpFlaps(t *testing.T) {
	for _, tc := range []struct {
		button core.Action
		lift   bool
	}{
		{core.ActionUp, true},
		{core.ActionLeft, false},
		{core.ActionDown, false},
		{core.ActionRight, false},
	} {
		g := newTestGame(1)
		g.Step(frame(core.ActionLeft))
		g.Step(frame(tc.button))
		if res := g.Step(core.NewInputFrame()); !res.Stepped {
			t.Fatalf("%v: expected an engine step", tc.button)
		}
		if got := g.Engine().Velocity() < 0; got != tc.lift {
			t.Errorf("%v: lift = %v, expected %v", tc.button, got, tc.lift)
		}
	}
}

func TestRoundOverAndRestart(t *testing.T) {
	g := newTestGame(1)
	g.SetHighScore(3)
	g.Step(frame(core.ActionUp))
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	st := g.State()
	if !st.GameOver || st.NewHighScore || st.HighScore != 3 {
		t.Fatalf("Unexpected state after falling: %+v", st)
	}
	if g.Medal() != NoMedal {
		t.Errorf("Expected no medal, got %v", g.Medal())
	}

	// Buttons do nothing once the round is over.
	before := g.Snapshot()
	g.Step(frame(core.ActionUp))
	if g.Snapshot() != before {
		t.Error("Game over should ignore buttons")
	}

	g.Generator().Next()
	seq := g.Generator().State()
	g.Step(frame(core.ActionRestart))
	if !g.State().Waiting || g.State().GameOver {
		t.Error("Restart should show the start screen")
	}
	if g.Generator().State() != seq {
		t.Error("Restart must continue the pipe sequence")
	}
	if g.Engine().Section() != SectionWidth {
		t.Error("Restart should build a fresh engine")
	}

	g.Reset(core.RuntimeConfig{Seed: 1, TickRate: 60})
	if g.Generator().State() != 0 {
		t.Errorf("Reset should reseed the generator, got %d", g.Generator().State())
	}
}

func TestSeedFromRuntime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	body := "pipes:\n  seed: 4\n  seed_from_runtime: true\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := newTestGame(100)
	if got := g.Generator().State(); got != 7 {
		t.Errorf("Expected generator at 100 mod 93, got %d", got)
	}
}

func TestPipesArriveWhileFlying(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionUp))
	for i := 0; i < 120 && !g.State().GameOver; i++ {
		g.Step(flapper(g))
	}
	if g.Engine().Pipes()[Slots-1] == NoPipe {
		t.Error("Expected a pipe after the first wrap")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(1)
	scr := core.NewScreen(core.ConsoleW, core.ConsoleH)

	g.Render(scr)
	if g.Display().LitCount() == 0 {
		t.Error("Start screen drew nothing")
	}
	if !strings.Contains(scr.String(), "F L A P P Y") {
		t.Error("Missing title")
	}

	g.Step(frame(core.ActionUp))
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	scr.Clear()
	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "Game Over") || !strings.Contains(out, "play again") {
		t.Errorf("Game over screen missing text:\n%s", out)
	}
}

package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/handheld-arcade/internal/core"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newTestEngine() *Engine {
	return NewEngine(DefaultPhysics(), NewLCG(0))
}

func TestLCGSequence(t *testing.T) {
	g := NewLCG(0)
	for i, want := range []int{19, 63, 67, 42, 82} {
		if got := g.Next(); got != want {
			t.Fatalf("value %d: got %d, expected %d", i, got, want)
		}
	}

	if g := NewLCG(-1); g.State() != 92 || g.Next() != 2 {
		t.Error("Negative seeds should wrap into the modulus")
	}
	if g := NewLCG(100); g.State() != 7 {
		t.Errorf("Seed 100 should reduce to 7, got %d", g.State())
	}
}

func TestGapRange(t *testing.T) {
	for seed := int64(0); seed < lcgModulus; seed++ {
		g := NewLCG(seed)
		for i := 0; i < 10; i++ {
			gap := g.Next()%gapSpread + minGap
			if gap < 5 || gap > 34 {
				t.Fatalf("seed %d: gap %d out of range", seed, gap)
			}
		}
	}
}

func TestInitialState(t *testing.T) {
	e := newTestEngine()
	if e.Section() != SectionWidth || e.Section() != 43 {
		t.Errorf("Expected section 43, got %d", e.Section())
	}
	if e.Height() != 32 || e.Velocity() != 0 {
		t.Errorf("Expected bird at 32 at rest, got %v %v", e.Height(), e.Velocity())
	}
	if e.Pipes() != [Slots]int{NoPipe, NoPipe, NoPipe, NoPipe} {
		t.Errorf("Expected no pipes, got %v", e.Pipes())
	}
	if e.PipeX(0) != 22 || e.PipeX(1) != 65 {
		t.Errorf("Unexpected pipe positions %d %d", e.PipeX(0), e.PipeX(1))
	}
}

func TestGravityAndLift(t *testing.T) {
	e := newTestEngine()
	e.Step(false)
	if !near(e.Velocity(), 5.88) || !near(e.Height(), 32-5.88*0.3) {
		t.Errorf("Free fall: v=%v h=%v", e.Velocity(), e.Height())
	}

	e = newTestEngine()
	e.Step(true)
	if e.Velocity() != -12 || !near(e.Height(), 35.6) {
		t.Errorf("Lift: v=%v h=%v", e.Velocity(), e.Height())
	}
}

func TestSectionTruncates(t *testing.T) {
	e := newTestEngine()
	e.Step(false)
	if e.Section() != 40 {
		t.Errorf("43 - 2.1 should truncate to 40, got %d", e.Section())
	}

	// -1.1 truncates toward zero before wrapping.
	e.section = 1
	e.Step(false)
	if e.Section() != 42 {
		t.Errorf("Expected wrap to 42, got %d", e.Section())
	}
	if e.Pipes() != [Slots]int{NoPipe, NoPipe, NoPipe, 24} {
		t.Errorf("Expected a new pipe in the last slot, got %v", e.Pipes())
	}
}

func TestPipesShiftOnWrap(t *testing.T) {
	e := newTestEngine()
	e.pipes = [Slots]int{5, 20, 7, 8}
	e.section = 0
	e.scored = true
	e.Step(false)

	if e.Pipes() != [Slots]int{20, 7, 8, 24} {
		t.Errorf("Unexpected pipes after shift: %v", e.Pipes())
	}
	if e.scored {
		t.Error("Wrap must clear the scored flag")
	}
}

func TestScoresOncePerPipe(t *testing.T) {
	e := newTestEngine()
	e.pipes[0] = 24
	e.section = 20

	if e.Step(false) != core.OutcomeContinue {
		t.Fatal("Bird in the gap should not collide")
	}
	if e.Score() != 1 {
		t.Fatalf("Expected score 1, got %d", e.Score())
	}
	e.Step(false)
	if e.Score() != 1 {
		t.Errorf("Same pipe scored twice: %d", e.Score())
	}
}

func TestNoScoreWithoutPipe(t *testing.T) {
	e := newTestEngine()
	e.section = 20
	e.Step(false)
	if e.Score() != 0 {
		t.Errorf("Empty slot must not score, got %d", e.Score())
	}
}

func TestCollisionBeforeMovement(t *testing.T) {
	e := newTestEngine()
	e.section = 3 // slot 1 centre lands on BirdX
	e.pipes[1] = 50

	if e.Step(true) != core.OutcomeRoundOver {
		t.Fatal("Expected a crash into the lower pipe")
	}
	if e.Height() != 32 || e.Steps() != 0 {
		t.Error("A crashing step must not move the bird")
	}
	if !e.Over() || e.Step(true) != core.OutcomeRoundOver {
		t.Error("Engine should stay over")
	}
}

func TestFallsOffScreen(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 20 && !e.Over(); i++ {
		e.Step(false)
	}
	if !e.Over() || e.Height() >= 0 {
		t.Errorf("Expected the bird to fall out, h=%v", e.Height())
	}
}

func TestCollidesWithoutPipe(t *testing.T) {
	tests := []struct {
		h    float64
		want bool
	}{
		{-0.1, true},
		{0, false},
		{64, false},
		{64.5, true},
	}
	for _, tc := range tests {
		if got := Collides(tc.h, BirdX, NoPipe, 0); got != tc.want {
			t.Errorf("Collides(%v) = %v, expected %v", tc.h, got, tc.want)
		}
	}
}

func TestCollidesBands(t *testing.T) {
	const gap = 20
	up, down := 0.0, -1.0

	tests := []struct {
		name     string
		h        float64
		pipeX    int
		velocity float64
		want     bool
	}{
		{"below the gap", 10, BirdX, up, true},
		{"inside the gap", 32, BirdX, up, false},
		{"above the gap", 50, BirdX, up, true},
		{"pipe far right", 10, 60, up, false},
		{"rim, wings up, beak clear", 21.5, 16, up, false},
		{"rim, wings down, wing hits", 21.5, 16, down, true},
		{"over rim, wings up", 22.5, BirdX, up, false},
		{"over rim, wings down", 22.5, BirdX, down, true},
		{"under top rim, tail clear", 43.5, 30, up, false},
		{"under top rim, tail hits", 43.5, 26, up, true},
		{"under top rim, wings down", 43.5, 26, down, false},
		{"just under top rim, beak reaches", 44.5, 32, up, true},
		{"just under top rim, beak clear", 44.5, 33, up, false},
		{"just under top rim, tail reaches", 44.5, 14, up, true},
		{"just under top rim, tail clear", 44.5, 13, up, false},
		{"two under top rim, wing reaches", 43.5, 14, up, true},
		{"three under top rim, wing reaches", 42.5, 25, up, true},
		{"three under top rim, wing clear", 42.5, 26, up, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(tc.h, tc.pipeX, gap, tc.velocity); got != tc.want {
				t.Errorf("Collides(%v, %d) = %v, expected %v", tc.h, tc.pipeX, got, tc.want)
			}
		})
	}
}

func TestMedals(t *testing.T) {
	m := DefaultMedals()
	tests := []struct {
		score int
		want  Medal
	}{
		{0, NoMedal},
		{9, NoMedal},
		{10, Bronze},
		{19, Bronze},
		{20, Silver},
		{49, Silver},
		{50, Gold},
		{120, Gold},
	}
	for _, tc := range tests {
		if got := m.Award(tc.score); got != tc.want {
			t.Errorf("Award(%d) = %v, expected %v", tc.score, got, tc.want)
		}
	}
}

func TestDigits(t *testing.T) {
	tests := []struct {
		draw func(s core.Surface)
		lit  int
	}{
		{func(s core.Surface) { drawDigit(s, 0, 0, 1) }, 10},
		{func(s core.Surface) { drawDigit(s, 0, 0, 8) }, 33},
		{func(s core.Surface) { drawNumber(s, 0, 7) }, 15},
		{func(s core.Surface) { drawNumber(s, 0, 11) }, 20},
	}
	for i, tc := range tests {
		b := core.NewBitmap()
		tc.draw(b)
		b.Flush()
		if got := b.LitCount(); got != tc.lit {
			t.Errorf("case %d: lit %d pixels, expected %d", i, got, tc.lit)
		}
	}
}

func TestBirdPose(t *testing.T) {
	b := core.NewBitmap()
	drawBird(b, 32, 0)
	b.Flush()
	if !b.Pixel(BirdX-8, 32) || !b.Pixel(BirdX+7, 32) {
		t.Error("Wings-up body row should span BirdX-8 to BirdX+7")
	}

	b = core.NewBitmap()
	drawBird(b, 32, -1)
	b.Flush()
	if b.Pixel(BirdX-8, 32) || !b.Pixel(BirdX-4, 32) {
		t.Error("Wings-down body row should start at BirdX-4")
	}
	if !b.Pixel(BirdX-8, 35) {
		t.Error("Wings-down tip should hang three rows below")
	}
}

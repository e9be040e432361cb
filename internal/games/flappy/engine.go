package flappy

import (
	"math"

	"github.com/vovakirdan/handheld-arcade/internal/core"
)

// Playfield geometry in panel pixels. Heights grow upward from the bottom edge.
const (
	ScreenW      = core.DisplayW
	ScreenH      = core.DisplayH
	GapHeight    = 25
	PipesOnPanel = 3
	Slots        = PipesOnPanel + 1
	SectionWidth = (ScreenW + 1) / PipesOnPanel
	BirdX        = 25
	NoPipe       = -1

	pipeOffset = (SectionWidth - 1) / 2 // section start to pipe centre
	minGap     = 5
	gapSpread  = 30
)

// Physics holds the integration constants.
type Physics struct {
	Gravity      float64
	LiftVelocity float64
	DeltaT       float64
	PipeSpeed    float64
}

// DefaultPhysics returns the console's stock physics.
func DefaultPhysics() Physics {
	return Physics{Gravity: 2 * 9.8, LiftVelocity: 12, DeltaT: 0.3, PipeSpeed: 7}
}

// Engine is the Flappy state machine.
type Engine struct {
	phys Physics
	lcg  *LCG

	section  int
	height   float64
	velocity float64
	pipes    [Slots]int
	scored   bool

	score int
	steps int
	over  bool
}

// NewEngine starts a round with the bird mid-screen and no pipes yet.
// The generator is shared across rounds by the caller.
func NewEngine(phys Physics, lcg *LCG) *Engine {
	e := &Engine{
		phys:    phys,
		lcg:     lcg,
		section: SectionWidth,
		height:  ScreenH / 2,
	}
	for i := range e.pipes {
		e.pipes[i] = NoPipe
	}
	return e
}

// SetPipeSpeed changes the horizontal scroll speed.
func (e *Engine) SetPipeSpeed(v float64) {
	e.phys.PipeSpeed = v
}

// PipeX returns the screen x of the centre of the pipe in slot i.
func (e *Engine) PipeX(i int) int {
	return e.section + i*SectionWidth - pipeOffset
}

// Step advances the bird and the pipes. The collision test runs first,
// against the state the player is looking at.
func (e *Engine) Step(lift bool) core.Outcome {
	if e.over {
		return core.OutcomeRoundOver
	}

	// Once the leading pipe's right rim has passed the bird, test the next one.
	slot := 0
	if e.section < 18 {
		slot = 1
	}
	if Collides(e.height, e.PipeX(slot), e.pipes[slot], e.velocity) {
		e.over = true
		return core.OutcomeRoundOver
	}

	if e.section < 21 && !e.scored && e.pipes[0] != NoPipe {
		e.score++
		e.scored = true
	}

	if lift {
		e.velocity = -e.phys.LiftVelocity
	} else {
		e.velocity += e.phys.DeltaT * e.phys.Gravity
	}
	e.height -= e.velocity * e.phys.DeltaT
	e.section = int(math.Trunc(float64(e.section) - e.phys.DeltaT*e.phys.PipeSpeed))
	e.steps++

	if e.section < 0 {
		e.section += SectionWidth
		e.scored = false
		copy(e.pipes[:], e.pipes[1:])
		e.pipes[Slots-1] = e.lcg.Next()%gapSpread + minGap
	}
	return core.OutcomeContinue
}

// Height returns the bird's height above the bottom edge.
func (e *Engine) Height() float64 { return e.height }

// Velocity returns the bird's velocity; positive is downward.
func (e *Engine) Velocity() float64 { return e.velocity }

// Section returns the scroll position of the leading slot.
func (e *Engine) Section() int { return e.section }

// Pipes returns the gap bottom of every slot, NoPipe for empty ones.
func (e *Engine) Pipes() [Slots]int { return e.pipes }

// Score returns the number of pipes passed.
func (e *Engine) Score() int { return e.score }

// Steps returns the number of steps taken.
func (e *Engine) Steps() int { return e.steps }

// Over reports whether the bird has crashed.
func (e *Engine) Over() bool { return e.over }

// Medal is the award shown on the game-over screen.
type Medal int

const (
	NoMedal Medal = iota
	Bronze
	Silver
	Gold
)

func (m Medal) String() string {
	switch m {
	case Bronze:
		return "bronze"
	case Silver:
		return "silver"
	case Gold:
		return "gold"
	default:
		return "none"
	}
}

// Medals holds the score needed for each medal.
type Medals struct {
	Bronze, Silver, Gold int
}

// DefaultMedals returns the stock medal tiers.
func DefaultMedals() Medals {
	return Medals{Bronze: 10, Silver: 20, Gold: 50}
}

// Award returns the best medal score earns.
func (m Medals) Award(score int) Medal {
	switch {
	case score >= m.Gold:
		return Gold
	case score >= m.Silver:
		return Silver
	case score >= m.Bronze:
		return Bronze
	default:
		return NoMedal
	}
}

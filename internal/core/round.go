package core

// Tick tells a game adapter what to do with one platform tick.
type Tick int

const (
	TickIdle    Tick = iota // nothing for the engine this tick
	TickStep                // run one engine step with the returned frame
	TickRestart             // the player asked for a fresh round
)

// Round carries the bookkeeping every console game shares: the start screen,
// pause, the step divider with latched buttons, and the best score.
// The zero value is a round that is waiting on its start screen.
type Round struct {
	every   int
	ticks   int
	latched InputFrame

	started bool
	paused  bool
	over    bool

	high    int
	newHigh bool
}

// Begin resets the round to its start screen. The best score is kept.
func (r *Round) Begin(stepsEvery int) {
	r.every = max(1, stepsEvery)
	r.ticks = 0
	r.latched = NewInputFrame()
	r.started = false
	r.paused = false
	r.over = false
	r.newHigh = false
}

// SetEvery changes the number of platform ticks per engine step.
func (r *Round) SetEvery(stepsEvery int) {
	r.every = max(1, stepsEvery)
}

// Every returns the number of platform ticks per engine step.
func (r *Round) Every() int {
	return r.every
}

// Advance consumes one platform tick of input.
//
// The first button press leaves the start screen and is swallowed. Once the
// round runs, buttons are latched until the divider fires; the returned frame
// then holds every button pressed since the previous step.
func (r *Round) Advance(in InputFrame) (InputFrame, Tick) {
	if in.Has(ActionRestart) {
		return InputFrame{}, TickRestart
	}
	if r.over {
		return InputFrame{}, TickIdle
	}
	if !r.started {
		if in.AnyButton() {
			r.started = true
		}
		return InputFrame{}, TickIdle
	}
	if in.Has(ActionPause) {
		r.paused = !r.paused
	}
	if r.paused {
		return InputFrame{}, TickIdle
	}

	for _, b := range Buttons {
		if in.Has(b) {
			r.latched.Set(b)
		}
	}
	r.ticks++
	if r.ticks < r.every {
		return InputFrame{}, TickIdle
	}
	r.ticks = 0
	frame := r.latched.Clone()
	r.latched.Clear()
	return frame, TickStep
}

// Finish ends the round and records score against the best.
func (r *Round) Finish(score int) {
	if r.over {
		return
	}
	r.over = true
	r.newHigh = score > r.high
	if r.newHigh {
		r.high = score
	}
}

// High returns the best score seen.
func (r *Round) High() int {
	return r.high
}

// SetHigh seeds the best score.
func (r *Round) SetHigh(score int) {
	r.high = score
}

// Over reports whether the round has ended.
func (r *Round) Over() bool {
	return r.over
}

// Waiting reports whether the start screen is still shown.
func (r *Round) Waiting() bool {
	return !r.started
}

// Paused reports whether the round is paused.
func (r *Round) Paused() bool {
	return r.paused
}

// State builds the platform-facing state for the given score.
func (r *Round) State(score int) GameState {
	return GameState{
		Score:        score,
		HighScore:    r.high,
		NewHighScore: r.over && r.newHigh,
		GameOver:     r.over,
		Paused:       r.paused,
		Waiting:      !r.started,
	}
}

// Footer returns the hint line for the current phase.
func (r *Round) Footer() string {
	switch {
	case r.over:
		return "Left: play again  any button: exit"
	case !r.started:
		return "Press any button to start"
	case r.paused:
		return "Paused - P to resume"
	default:
		return "P pause  R restart  Q quit"
	}
}

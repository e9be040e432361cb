package tetris

import (
	"math/rand"

	"github.com/vovakirdan/handheld-arcade/internal/core"
)

// Spawn position of every new piece.
const (
	SpawnX = Cols/2 - 1
	SpawnY = Rows - 1
)

// Rules holds the speed and scoring constants of a round.
type Rules struct {
	StartSpeed  int
	MaxSpeed    int
	Thresholds  []int // score needed to leave speed 1, 2, ...
	Awards      [4]int
	Progression bool // speed rises with score
}

// DefaultRules returns the console's stock rules.
func DefaultRules() Rules {
	return Rules{
		StartSpeed:  1,
		MaxSpeed:    5,
		Thresholds:  []int{2000, 4000, 10000, 20000},
		Awards:      [4]int{100, 300, 600, 1000},
		Progression: true,
	}
}

// Piece is the falling piece.
type Piece struct {
	Kind Kind
	X, Y int
	Rot  Rotation
}

// Clear describes the rows removed by the last lock.
type Clear struct {
	Row   int // lowest removed row, -1 if none
	Count int
	Award int
}

// Engine is the Tetris state machine.
type Engine struct {
	rules Rules
	rng   *rand.Rand

	grid   Grid
	active Piece
	live   bool // active is falling
	next   Kind

	speed         int
	ticksTillFall int
	multiplier    int
	score         int
	lines         int
	last          Clear
	over          bool
}

// NewEngine starts a round. The first piece is placed at the spawn point of
// the empty board without a fit check.
func NewEngine(rules Rules, rng *rand.Rand) *Engine {
	e := &Engine{
		rules: rules,
		rng:   rng,
		speed: rules.StartSpeed,
		last:  Clear{Row: -1},
	}
	e.ticksTillFall = e.fallInterval()
	e.active = Piece{Kind: e.draw(), X: SpawnX, Y: SpawnY}
	e.next = e.draw()
	e.live = true
	return e
}

func (e *Engine) draw() Kind {
	return Kind(e.rng.Intn(int(kindCount)))
}

func (e *Engine) fallInterval() int {
	return e.rules.MaxSpeed + 1 - e.speed
}

// speedLimit returns the score that raises the speed, or -1 when the speed
// no longer rises.
func (e *Engine) speedLimit() int {
	if !e.rules.Progression || e.speed >= e.rules.MaxSpeed || e.speed-1 >= len(e.rules.Thresholds) {
		return -1
	}
	return e.rules.Thresholds[e.speed-1]
}

// Fits reports whether a piece of kind k in rotation r anchored at (x, y)
// lies inside the board without overlapping locked cells. There is no upper
// bound: rows above the board are free.
func (e *Engine) Fits(x, y int, k Kind, r Rotation) bool {
	for _, o := range shapes[k][r] {
		col, row := x+o.DX, y+o.DY
		if col < 0 || col >= Cols || row < 0 {
			return false
		}
		if e.grid.Occupied(col, row) {
			return false
		}
	}
	return true
}

// Step runs one tick. Down is a soft drop, left and right shift the piece,
// up rotates it. Each requested move is checked on its own, so a blocked
// rotation does not cancel a legal shift.
func (e *Engine) Step(in core.InputFrame) core.Outcome {
	if e.over {
		return core.OutcomeRoundOver
	}

	p := e.active
	nx, ny, nr := p.X, p.Y, p.Rot
	if in.Has(core.ActionDown) {
		ny = p.Y - 1
	}
	if in.Has(core.ActionLeft) {
		nx = p.X - 1
	}
	if in.Has(core.ActionRight) {
		nx = p.X + 1
	}
	if in.Has(core.ActionUp) {
		nr = p.Rot.Next()
	}

	if !e.live {
		e.active = Piece{Kind: e.next, X: SpawnX, Y: SpawnY}
		e.next = e.draw()
		e.live = true
		p = e.active
		nx, ny, nr = p.X, p.Y, p.Rot
		if !e.Fits(p.X, p.Y, p.Kind, p.Rot) {
			e.over = true
			return core.OutcomeRoundOver
		}
	}

	e.ticksTillFall--
	if e.ticksTillFall == 0 {
		if limit := e.speedLimit(); limit != -1 && e.score >= limit {
			e.speed++
		}
		e.ticksTillFall = e.fallInterval()
		if ny == p.Y {
			ny--
		}
	}

	if nx != p.X && e.Fits(nx, p.Y, p.Kind, p.Rot) {
		p.X = nx
	}
	if nr != p.Rot && e.Fits(p.X, p.Y, p.Kind, nr) {
		p.Rot = nr
	}
	locked := false
	if ny < p.Y {
		if e.Fits(p.X, ny, p.Kind, p.Rot) {
			p.Y = ny
		} else {
			e.lock(p)
			locked = true
		}
	}
	e.active = p

	if locked {
		e.last = e.clearRows()
		e.score += e.last.Award
	}
	return core.OutcomeContinue
}

func (e *Engine) lock(p Piece) {
	for _, o := range shapes[p.Kind][p.Rot] {
		col, row := p.X+o.DX, p.Y+o.DY
		if row < Rows {
			e.grid[row][col] = true
		}
	}
	e.live = false
}

// clearRows removes the first run of full rows and scores it. A lock that
// clears nothing resets the combo multiplier.
func (e *Engine) clearRows() Clear {
	start, n := e.grid.FirstRun()
	if start == -1 {
		e.multiplier = 0
		return Clear{Row: -1}
	}
	e.multiplier++
	award := 0
	if n >= 1 && n <= len(e.rules.Awards) {
		award = e.multiplier * e.rules.Awards[n-1]
	}
	e.grid.ShiftRowsDown(start, n)
	e.lines += n
	return Clear{Row: start, Count: n, Award: award}
}

// Grid returns a copy of the locked cells.
func (e *Engine) Grid() Grid { return e.grid }

// Active returns the falling piece and whether one is on the board.
func (e *Engine) Active() (Piece, bool) { return e.active, e.live }

// Next returns the queued piece.
func (e *Engine) Next() Kind { return e.next }

// Speed returns the current speed level.
func (e *Engine) Speed() int { return e.speed }

// TicksTillFall returns the ticks left before gravity pulls the piece down.
func (e *Engine) TicksTillFall() int { return e.ticksTillFall }

// Multiplier returns the combo multiplier.
func (e *Engine) Multiplier() int { return e.multiplier }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Lines returns the number of rows cleared this round.
func (e *Engine) Lines() int { return e.lines }

// LastClear describes the rows removed by the most recent lock.
func (e *Engine) LastClear() Clear { return e.last }

// Over reports whether a spawn failed.
func (e *Engine) Over() bool { return e.over }

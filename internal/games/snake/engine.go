package snake

import (
	"math/rand"

	"github.com/vovakirdan/handheld-arcade/internal/core"
)

// Grid dimensions. The board is a torus: leaving one edge enters the opposite one.
const (
	Width  = 20
	Height = 10
	cells  = Width * Height
)

// Direction is a heading on the board. Up increases y.
type Direction int

// Directions in the order the console polls its buttons.
const (
	Left Direction = iota
	Down
	Right
	Up
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the one-cell offset of d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Down:
		return 0, -1
	default:
		return 0, 1
	}
}

// Segment is one body cell. Next points from this segment to the one behind
// it and is only used to draw joints.
type Segment struct {
	Pos   core.Point
	Next  Direction
	Eaten bool
}

// AnimalKind selects the bonus animal's sprite.
type AnimalKind int

const (
	Lizard AnimalKind = iota
	Crab
	Fish
	animalKinds
)

func (k AnimalKind) String() string {
	switch k {
	case Lizard:
		return "lizard"
	case Crab:
		return "crab"
	case Fish:
		return "fish"
	default:
		return "unknown"
	}
}

// Rules holds the scoring and spawning constants of a round.
type Rules struct {
	AppleReward      int
	AnimalEvery      int // apples between animals
	FirstAnimalAfter int
	AnimalLifetime   int // moves the animal stays up
}

// DefaultRules returns the console's stock rules.
func DefaultRules() Rules {
	return Rules{AppleReward: 7, AnimalEvery: 5, FirstAnimalAfter: 4, AnimalLifetime: 20}
}

// Engine is the Snake state machine. It knows nothing about time or drawing.
type Engine struct {
	rules Rules
	rng   *rand.Rand

	body     []Segment // head at index 0
	occupied [Height][Width]bool
	heading  Direction

	apple      core.Point
	animal     core.Point
	animalKind AnimalKind
	timer      int
	tillAnimal int

	score int
	moves int
	over  bool
}

// NewEngine starts a round: a four-cell snake heading right and one apple.
func NewEngine(rules Rules, rng *rand.Rand) *Engine {
	e := &Engine{
		rules:      rules,
		rng:        rng,
		heading:    Right,
		apple:      core.None,
		animal:     core.None,
		tillAnimal: rules.FirstAnimalAfter,
	}
	e.animalKind = AnimalKind(rng.Intn(int(animalKinds)))
	for x := 12; x >= 9; x-- {
		e.push(Segment{Pos: core.Pt(x, 5), Next: Left})
	}
	e.apple = e.placeApple()
	return e
}

// push appends a segment at the tail end and marks its cell.
func (e *Engine) push(s Segment) {
	e.body = append(e.body, s)
	e.occupied[s.Pos.Y][s.Pos.X] = true
}

// Advance moves the snake one cell. A reversal of the current heading is
// ignored and the snake keeps going straight.
func (e *Engine) Advance(dir Direction) core.Outcome {
	if e.over {
		return core.OutcomeRoundOver
	}
	if dir != e.heading.Opposite() {
		e.heading = dir
	}

	dx, dy := e.heading.Delta()
	target := core.WrapPoint(e.body[0].Pos.Add(dx, dy), Width, Height)

	// Checked against the pre-move grid, so running into the tail is fatal.
	if e.occupied[target.Y][target.X] {
		e.over = true
		return core.OutcomeRoundOver
	}

	e.body = append(e.body, Segment{})
	copy(e.body[1:], e.body)
	e.body[0] = Segment{Pos: target, Next: e.heading.Opposite()}
	e.occupied[target.Y][target.X] = true
	e.moves++

	head := &e.body[0]
	if head.Pos == e.apple {
		e.score += e.rules.AppleReward
		e.apple = core.None
		head.Eaten = true
		e.tillAnimal--
	} else {
		e.popTail()
	}

	if e.apple.IsNone() {
		e.apple = e.placeApple()
	}

	if e.timer > 0 && e.animal.Y == head.Pos.Y &&
		(head.Pos.X == e.animal.X || head.Pos.X == e.animal.X+1) {
		e.score += e.timer
		e.timer = 0
		e.animal = core.None
		head.Eaten = true
	}
	if e.timer > 0 {
		e.timer--
		if e.timer == 0 {
			e.animal = core.None
		}
	}

	if e.tillAnimal == 0 {
		e.spawnAnimal()
	}
	return core.OutcomeContinue
}

func (e *Engine) popTail() {
	last := len(e.body) - 1
	tail := e.body[last].Pos
	e.occupied[tail.Y][tail.X] = false
	e.body = e.body[:last]
}

func (e *Engine) spawnAnimal() {
	e.tillAnimal = e.rules.AnimalEvery
	e.timer = e.rules.AnimalLifetime
	e.animalKind = AnimalKind(e.rng.Intn(int(animalKinds)))

	// The apple's cell is blocked for the duration of the scan.
	if !e.apple.IsNone() {
		e.occupied[e.apple.Y][e.apple.X] = true
		defer func() { e.occupied[e.apple.Y][e.apple.X] = false }()
	}
	e.animal = e.placeAnimal()
	if e.animal.IsNone() {
		e.timer = 0
	}
}

// scan visits every cell once, starting at a random offset and walking
// row-major with wrap, and returns the first cell accepted by ok.
func (e *Engine) scan(ok func(x, y int) bool) core.Point {
	start := e.rng.Intn(cells)
	for i := 0; i < cells; i++ {
		idx := (start + i) % cells
		x, y := idx%Width, idx/Width
		if ok(x, y) {
			return core.Pt(x, y)
		}
	}
	return core.None
}

func (e *Engine) placeApple() core.Point {
	return e.scan(func(x, y int) bool {
		return !e.occupied[y][x]
	})
}

func (e *Engine) placeAnimal() core.Point {
	return e.scan(func(x, y int) bool {
		return x != Width-1 && !e.occupied[y][x] && !e.occupied[y][x+1]
	})
}

// Step resolves the buttons held this step into a heading and advances.
// Buttons are applied in console order, each one rejected if it reverses the
// direction chosen so far.
func (e *Engine) Step(in core.InputFrame) core.Outcome {
	dir := e.heading
	for i, b := range core.Buttons {
		d := Direction(i)
		if in.Has(b) && d != dir.Opposite() {
			dir = d
		}
	}
	return e.Advance(dir)
}

// Segments returns the body, head first. The slice must not be modified.
func (e *Engine) Segments() []Segment { return e.body }

// Head returns the head cell.
func (e *Engine) Head() core.Point { return e.body[0].Pos }

// Heading returns the current heading.
func (e *Engine) Heading() Direction { return e.heading }

// Apple returns the apple cell or core.None.
func (e *Engine) Apple() core.Point { return e.apple }

// Animal returns the left cell of the animal, or core.None when none is up.
func (e *Engine) Animal() core.Point {
	if e.timer == 0 {
		return core.None
	}
	return e.animal
}

// AnimalKind returns the kind of the current or last animal.
func (e *Engine) AnimalKind() AnimalKind { return e.animalKind }

// AnimalTimer returns the bonus still available for the animal.
func (e *Engine) AnimalTimer() int { return e.timer }

// ApplesTillAnimal returns how many apples remain before the next animal.
func (e *Engine) ApplesTillAnimal() int { return e.tillAnimal }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Moves returns the number of committed moves.
func (e *Engine) Moves() int { return e.moves }

// Over reports whether the snake has hit itself.
func (e *Engine) Over() bool { return e.over }

// Occupied reports whether the snake covers a cell.
func (e *Engine) Occupied(p core.Point) bool {
	p = core.WrapPoint(p, Width, Height)
	return e.occupied[p.Y][p.X]
}

// AppleInFront reports whether the apple is one or two cells ahead.
func (e *Engine) AppleInFront() bool {
	if e.apple.IsNone() {
		return false
	}
	dx, dy := e.heading.Delta()
	head := e.body[0].Pos
	for n := 1; n <= 2; n++ {
		if core.WrapPoint(head.Add(n*dx, n*dy), Width, Height) == e.apple {
			return true
		}
	}
	return false
}

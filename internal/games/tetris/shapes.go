package tetris

// Kind identifies one of the nine piece shapes.
type Kind int

const (
	Single Kind = iota
	Square
	SmallL
	T
	Z
	S
	L
	J
	I
	kindCount
)

func (k Kind) String() string {
	switch k {
	case Single:
		return "single"
	case Square:
		return "square"
	case SmallL:
		return "small-l"
	case T:
		return "t"
	case Z:
		return "z"
	case S:
		return "s"
	case L:
		return "l"
	case J:
		return "j"
	case I:
		return "i"
	default:
		return "unknown"
	}
}

// Rotation is a quarter-turn state, in the order the rotate button cycles.
type Rotation int

const (
	RotNone Rotation = iota
	RotRight
	RotUpsideDown
	RotLeft
	rotationCount
)

// Next returns the rotation one press of the rotate button leads to.
func (r Rotation) Next() Rotation {
	return (r + 1) % rotationCount
}

func (r Rotation) String() string {
	switch r {
	case RotNone:
		return "none"
	case RotRight:
		return "right"
	case RotUpsideDown:
		return "upside-down"
	case RotLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Offset is a cell relative to a piece's anchor. Negative DY is below the anchor.
type Offset struct {
	DX, DY int
}

// shapes is the single geometry table used by fit checks, locking and drawing.
var shapes = [kindCount][rotationCount][]Offset{
	Single: {
		RotNone:       {{0, 0}},
		RotRight:      {{0, 0}},
		RotUpsideDown: {{0, 0}},
		RotLeft:       {{0, 0}},
	},
	Square: {
		RotNone:       {{0, 0}, {1, 0}, {0, -1}, {1, -1}},
		RotRight:      {{0, 0}, {1, 0}, {0, -1}, {1, -1}},
		RotUpsideDown: {{0, 0}, {1, 0}, {0, -1}, {1, -1}},
		RotLeft:       {{0, 0}, {1, 0}, {0, -1}, {1, -1}},
	},
	SmallL: {
		RotNone:       {{0, 0}, {0, -1}, {1, -1}},
		RotRight:      {{0, 0}, {1, 0}, {0, -1}},
		RotUpsideDown: {{0, 0}, {1, 0}, {1, -1}},
		RotLeft:       {{1, 0}, {0, -1}, {1, -1}},
	},
	T: {
		RotNone:       {{-1, 0}, {0, 0}, {1, 0}, {0, -1}},
		RotRight:      {{0, 0}, {0, -1}, {0, -2}, {-1, -1}},
		RotUpsideDown: {{0, 0}, {-1, -1}, {0, -1}, {1, -1}},
		RotLeft:       {{0, 0}, {0, -1}, {0, -2}, {1, -1}},
	},
	Z: {
		RotNone:       {{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
		RotRight:      {{0, 0}, {0, -1}, {-1, -1}, {-1, -2}},
		RotUpsideDown: {{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
		RotLeft:       {{0, 0}, {0, -1}, {-1, -1}, {-1, -2}},
	},
	S: {
		RotNone:       {{0, 0}, {1, 0}, {-1, -1}, {0, -1}},
		RotRight:      {{0, 0}, {0, -1}, {1, -1}, {1, -2}},
		RotUpsideDown: {{0, 0}, {1, 0}, {-1, -1}, {0, -1}},
		RotLeft:       {{0, 0}, {0, -1}, {1, -1}, {1, -2}},
	},
	L: {
		RotNone:       {{1, 0}, {-1, -1}, {0, -1}, {1, -1}},
		RotRight:      {{0, 0}, {0, -1}, {0, -2}, {1, -2}},
		RotUpsideDown: {{-1, 0}, {0, 0}, {1, 0}, {-1, -1}},
		RotLeft:       {{0, 0}, {1, 0}, {1, -1}, {1, -2}},
	},
	J: {
		RotNone:       {{-1, 0}, {-1, -1}, {0, -1}, {1, -1}},
		RotRight:      {{0, 0}, {1, 0}, {0, -1}, {0, -2}},
		RotUpsideDown: {{-1, 0}, {0, 0}, {1, 0}, {1, -1}},
		RotLeft:       {{1, 0}, {1, -1}, {0, -2}, {1, -2}},
	},
	I: {
		RotNone:       {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		RotRight:      {{0, 0}, {0, -1}, {0, -2}, {0, -3}},
		RotUpsideDown: {{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		RotLeft:       {{0, 0}, {0, -1}, {0, -2}, {0, -3}},
	},
}

// Cells returns the offsets a piece of kind k occupies in rotation r.
// The returned slice is shared and must not be modified.
func Cells(k Kind, r Rotation) []Offset {
	return shapes[k][r]
}

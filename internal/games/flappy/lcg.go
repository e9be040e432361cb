package flappy

// LCG is the pipe generator: x = (17x + 19) mod 93.
// The default seed 0 yields 19, 63, 67, 42, 82, ...
type LCG struct {
	x int
}

// lcgModulus bounds every value the generator returns.
const lcgModulus = 93

// NewLCG starts a generator at seed, reduced into [0, 93).
func NewLCG(seed int64) *LCG {
	x := int(seed % lcgModulus)
	if x < 0 {
		x += lcgModulus
	}
	return &LCG{x: x}
}

// Next advances the generator and returns the new value.
func (g *LCG) Next() int {
	g.x = (17*g.x + 19) % lcgModulus
	return g.x
}

// State returns the last value produced, or the seed.
func (g *LCG) State() int {
	return g.x
}

package flappy

import "math"

// band is one horizontal slice of a pipe's outline. A bird whose height h
// satisfies gap+lo <= h < gap+hi collides when the pipe's span
// [x-half, x+half] reaches the bird's span [BirdX+left, BirdX+right].
type band struct {
	lo, hi      float64
	half        int
	left, right int
}

var (
	below = math.Inf(-1)
	above = math.Inf(1)
)

// The lower pipe's rim spans gap-3 to gap+1 and the upper rim starts at
// gap+GapHeight. Narrow bands next to the rims trim the bird's beak or
// wing from the test.
var wingsUpBands = []band{
	{below, -3, 2, -8, 6},
	{-3, 1, 3, -8, 6},
	{1, 2, 3, -4, 4},
	{GapHeight + 4, above, 2, -8, 6},
	{GapHeight, GapHeight + 4, 3, -8, 6},
	{GapHeight - 1, GapHeight, 3, -8, 4},
	{GapHeight - 2, GapHeight - 1, 3, -8, -2},
	{GapHeight - 3, GapHeight - 2, 3, -8, -3},
}

var wingsDownBands = []band{
	{below, -3, 2, -8, 6},
	{-3, 1, 3, -8, 6},
	{1, 2, 3, -8, 4},
	{2, 3, 3, -8, -2},
	{3, 4, 3, -8, -3},
	{GapHeight + 4, above, 2, -8, 6},
	{GapHeight, GapHeight + 4, 3, -8, 6},
	{GapHeight - 1, GapHeight, 3, -8, 4},
}

// WingsUp reports the wing pose for a vertical velocity. Falling or
// hovering birds hold their wings up.
func WingsUp(velocity float64) bool {
	return velocity >= 0
}

// Collides reports whether a bird at height collides with the pipe at pipeX
// whose gap starts at gapBottom. With no pipe (gapBottom == NoPipe) only
// leaving the screen counts. When a pipe is present the screen edges are
// not checked.
func Collides(height float64, pipeX, gapBottom int, velocity float64) bool {
	if gapBottom == NoPipe {
		return height < 0 || height > ScreenH
	}

	bands := wingsDownBands
	if WingsUp(velocity) {
		bands = wingsUpBands
	}
	g := float64(gapBottom)
	for _, b := range bands {
		if height < g+b.lo || height >= g+b.hi {
			continue
		}
		if pipeX+b.half >= BirdX+b.left && pipeX-b.half <= BirdX+b.right {
			return true
		}
	}
	return false
}

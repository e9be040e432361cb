package tetris

// Board dimensions. Row 0 is the bottom row.
const (
	Cols = 10
	Rows = 20
)

// Grid holds the locked cells.
type Grid [Rows][Cols]bool

// Occupied reports whether a locked cell covers (col, row).
// Cells above the board are always free.
func (g Grid) Occupied(col, row int) bool {
	if row >= Rows {
		return false
	}
	return g[row][col]
}

// Full reports whether every cell of row is occupied.
func (g Grid) Full(row int) bool {
	for _, c := range g[row] {
		if !c {
			return false
		}
	}
	return true
}

// ShiftRowsDown removes n rows starting at start, moves the rows above them
// down by n and empties the top n rows.
func (g *Grid) ShiftRowsDown(start, n int) {
	for r := start; r < Rows-n; r++ {
		g[r] = g[r+n]
	}
	for r := Rows - n; r < Rows; r++ {
		g[r] = [Cols]bool{}
	}
}

// FirstRun finds the lowest full row and counts the full rows directly above
// it. Rows past the first non-full one are not examined. start is -1 when
// no row is full.
func (g Grid) FirstRun() (start, n int) {
	start = -1
	for r := 0; r < Rows; r++ {
		full := g.Full(r)
		if start == -1 {
			if full {
				start, n = r, 1
			}
			continue
		}
		if !full {
			break
		}
		n++
	}
	return start, n
}

// Filled returns the number of locked cells.
func (g Grid) Filled() int {
	n := 0
	for r := range g {
		for _, c := range g[r] {
			if c {
				n++
			}
		}
	}
	return n
}

package astar

// Point is a grid coordinate. X indexes rows and Y indexes columns.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Grid is a 2D board of cell states addressed as grid[x][y].
//
// Rows may differ in width; every lookup bounds-checks against the width
// of the row being addressed.
type Grid [][]CellState

// NewGrid returns a rows x cols grid with every cell Empty.
func NewGrid(rows, cols int) Grid {
	grid := make(Grid, rows)
	for x := range grid {
		grid[x] = make([]CellState, cols)
	}
	return grid
}

// Rows returns the number of rows.
func (grid Grid) Rows() int { return len(grid) }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (grid Grid) InBounds(x, y int) bool {
	return x >= 0 && x < len(grid) && y >= 0 && y < len(grid[x])
}

// Valid reports whether (x, y) can be added to the open list.
//
// Only Empty cells are valid. Closed, Path, Start and Finish cells are
// rejected together with obstacles: a visited cell is treated as not
// traversable, which is what keeps a cell from being discovered twice
// without a separate visited set.
func (grid Grid) Valid(x, y int) bool {
	if !grid.InBounds(x, y) {
		return false
	}
	switch grid[x][y] {
	case Empty:
		return true
	case Obstacle, Closed, Path, Start, Finish:
		return false
	default:
		return false
	}
}

// At returns the state at (x, y) and false when out of bounds.
func (grid Grid) At(x, y int) (CellState, bool) {
	if !grid.InBounds(x, y) {
		return Empty, false
	}
	return grid[x][y], true
}

// Set writes state at (x, y). Coordinates are not checked.
func (grid Grid) Set(x, y int, state CellState) {
	grid[x][y] = state
}

// Clone returns a deep copy sharing no memory with grid.
func (grid Grid) Clone() Grid {
	if grid == nil {
		return nil
	}
	clone := make(Grid, len(grid))
	for x, row := range grid {
		clone[x] = append([]CellState(nil), row...)
	}
	return clone
}

// Count returns how many cells hold state.
func (grid Grid) Count(state CellState) int {
	n := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell == state {
				n++
			}
		}
	}
	return n
}

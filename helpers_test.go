package astar

// gridOf builds a grid from picture rows: '#' is an obstacle, anything else empty.
func gridOf(rows ...string) Grid {
	grid := make(Grid, len(rows))
	for x, row := range rows {
		grid[x] = make([]CellState, len(row))
		for y, c := range row {
			if c == '#' {
				grid[x][y] = Obstacle
			}
		}
	}
	return grid
}

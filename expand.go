package astar

// directions are the neighbor offsets in expansion order: up, left, down, right.
var directions = [4]Point{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// expand pushes every valid neighbor of node onto open and marks it Closed
// right away. Marking on insertion means a cell is discovered from exactly
// one parent, so its cost is never relaxed later.
func expand(node Node, open *OpenList, grid Grid, goal Point, cameFrom map[Point]Point) int {
	pushed := 0
	for _, delta := range directions {
		x, y := node.X+delta.X, node.Y+delta.Y
		if !grid.Valid(x, y) {
			continue
		}
		open.Push(Node{X: x, Y: y, G: node.G + 1, H: Manhattan(x, y, goal.X, goal.Y)})
		grid.Set(x, y, Closed)
		cameFrom[Point{X: x, Y: y}] = node.Point()
		pushed++
	}
	return pushed
}

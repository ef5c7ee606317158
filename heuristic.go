package astar

// Manhattan returns |goalX-x| + |goalY-y|, the admissible and consistent
// estimate for 4-directional unit-cost movement.
func Manhattan(x, y, goalX, goalY int) int {
	return abs(goalX-x) + abs(goalY-y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

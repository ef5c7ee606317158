package internal

// ReconstructPath walks cameFrom back from goal to start and returns the
// nodes in start-to-goal order. The boolean is false when the chain breaks
// before reaching start; the partial path is still returned.
func ReconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	goal NodeType,
	start NodeType,
) ([]NodeType, bool) {
	path := []NodeType{goal}
	current := goal
	for current != start {
		previousNode, exists := cameFrom[current]
		if !exists {
			reverse(path)
			return path, false
		}
		path = append(path, previousNode)
		current = previousNode
	}
	reverse(path)
	return path, true
}

func reverse[T any](items []T) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}

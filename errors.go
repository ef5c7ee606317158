package astar

import "errors"

var (
	// ErrNoPath is returned when the open list empties before the goal is reached.
	ErrNoPath = errors.New("no path found")
	// ErrInvalidInput is returned for an empty grid or a start or goal that is
	// out of bounds or on an obstacle.
	ErrInvalidInput = errors.New("invalid input")
)

package astar

import (
	"errors"
	"fmt"

	"github.com/pdrpinto/gridastar/internal"
)

// Status is the state of a search.
type Status uint8

const (
	// Running means the open list is non-empty and the goal has not been popped.
	Running Status = iota
	// Succeeded means the goal was popped and the grid annotated.
	Succeeded
	// Failed means the open list emptied without reaching the goal.
	Failed
)

func (status Status) String() string {
	switch status {
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", uint8(status))
	}
}

var errStillRunning = errors.New("search still running")

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Node
	OpenCount int
	Pushed    int
	Status    Status
	StepIndex int
}

// Done reports whether the search reached a terminal state.
func (snapshot StepSnapshot) Done() bool { return snapshot.Status != Running }

// Found reports whether the goal was reached.
func (snapshot StepSnapshot) Found() bool { return snapshot.Status == Succeeded }

// Stepper runs the search one pop at a time over its own copy of the grid.
type Stepper struct {
	grid     Grid
	start    Point
	goal     Point
	observer func(StepSnapshot)

	open     OpenList
	cameFrom map[Point]Point

	current   Node
	pushed    int
	stepCount int
	status    Status
}

// NewStepper validates the endpoints, seeds the open list with the start
// node and marks the start cell Closed. The caller's grid is not modified.
func NewStepper(grid Grid, start Point, goal Point, options ...Option) (*Stepper, error) {
	if err := validateEndpoints(grid, start, goal); err != nil {
		return nil, err
	}
	opts := applyOptions(options)

	s := &Stepper{
		grid:     grid.Clone(),
		start:    start,
		goal:     goal,
		observer: opts.Observer,
		cameFrom: make(map[Point]Point),
	}
	s.open.Push(Node{X: start.X, Y: start.Y, G: 0, H: Manhattan(start.X, start.Y, goal.X, goal.Y)})
	s.grid.Set(start.X, start.Y, Closed)
	return s, nil
}

func validateEndpoints(grid Grid, start Point, goal Point) error {
	if grid.Rows() == 0 {
		return fmt.Errorf("%w: empty grid", ErrInvalidInput)
	}
	for _, endpoint := range []struct {
		name  string
		point Point
	}{{"start", start}, {"goal", goal}} {
		state, ok := grid.At(endpoint.point.X, endpoint.point.Y)
		if !ok {
			return fmt.Errorf("%w: %s (%d,%d) is out of bounds", ErrInvalidInput, endpoint.name, endpoint.point.X, endpoint.point.Y)
		}
		if state == Obstacle {
			return fmt.Errorf("%w: %s (%d,%d) is an obstacle", ErrInvalidInput, endpoint.name, endpoint.point.X, endpoint.point.Y)
		}
	}
	return nil
}

// Step pops the lowest-f node, marks it Path and either finishes on the
// goal or expands its neighbors. Once the search is done Step keeps
// returning the final snapshot.
func (s *Stepper) Step() StepSnapshot {
	if s.status != Running {
		return s.snapshot()
	}

	node, ok := s.open.PopMin()
	if !ok {
		s.status = Failed
		return s.emit()
	}
	s.stepCount++
	s.current = node

	// Marked before the goal test; the goal cell is overwritten below.
	s.grid.Set(node.X, node.Y, Path)

	if node.X == s.goal.X && node.Y == s.goal.Y {
		s.grid.Set(s.start.X, s.start.Y, Start)
		s.grid.Set(s.goal.X, s.goal.Y, Finish)
		s.status = Succeeded
		return s.emit()
	}

	s.pushed += expand(node, &s.open, s.grid, s.goal, s.cameFrom)
	if s.open.Len() == 0 {
		s.status = Failed
	}
	return s.emit()
}

// Done reports whether the search reached a terminal state.
func (s *Stepper) Done() bool { return s.status != Running }

// Status returns the current state of the search.
func (s *Stepper) Status() Status { return s.status }

// Grid returns a copy of the working grid as annotated so far.
func (s *Stepper) Grid() Grid { return s.grid.Clone() }

// Result returns the outcome of a finished search. It returns ErrNoPath
// when the search failed.
func (s *Stepper) Result() (Result, error) {
	result := Result{
		Start:    s.start,
		Goal:     s.goal,
		Expanded: s.stepCount,
	}
	switch s.status {
	case Succeeded:
		route, _ := internal.ReconstructPath(s.cameFrom, s.goal, s.start)
		result.Grid = s.grid.Clone()
		result.Cost = s.current.G
		result.Route = route
		result.Found = true
		return result, nil
	case Failed:
		return result, ErrNoPath
	default:
		return Result{}, errStillRunning
	}
}

func (s *Stepper) snapshot() StepSnapshot {
	return StepSnapshot{
		Current:   s.current,
		OpenCount: s.open.Len(),
		Pushed:    s.pushed,
		Status:    s.status,
		StepIndex: s.stepCount,
	}
}

func (s *Stepper) emit() StepSnapshot {
	snapshot := s.snapshot()
	if s.observer != nil {
		s.observer(snapshot)
	}
	return snapshot
}

package astar

import "runtime"

// Result contains the outcome of a search
type Result struct {
	// Grid is the annotated copy of the input. Nil when no path was found.
	Grid  Grid
	Start Point
	Goal  Point
	// Cost is the g-cost of the goal node, i.e. the number of steps.
	Cost int
	// Expanded counts popped nodes, the goal included.
	Expanded int
	// Route lists the cells from start to goal, both included.
	Route []Point
	Found bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	Observer        func(StepSnapshot)
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many searches SolveAll runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithObserver registers a callback invoked after every step. Under
// SolveAll the callback is shared by all jobs and may run concurrently.
func WithObserver(observer func(StepSnapshot)) Option {
	return func(options *Options) { options.Observer = observer }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	return searchOptions
}

// Search runs A* from start to goal on a copy of grid.
//
// On success the returned grid has every expanded cell marked Path, every
// discovered but unexpanded cell Closed, and Start and Finish at the
// endpoints. When the goal is unreachable Search returns ErrNoPath with a
// Result whose Grid is nil. Endpoints outside the grid or on an obstacle
// yield ErrInvalidInput.
func Search(grid Grid, start Point, goal Point, options ...Option) (Result, error) {
	stepper, err := NewStepper(grid, start, goal, options...)
	if err != nil {
		return Result{Start: start, Goal: goal}, err
	}
	for !stepper.Done() {
		stepper.Step()
	}
	return stepper.Result()
}

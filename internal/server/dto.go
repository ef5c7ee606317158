package server

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/gridio"
)

// GridRequest carries a grid either as an integer matrix or in the text
// format, plus the endpoints.
type GridRequest struct {
	Grid  [][]int      `json:"grid,omitempty"`
	Text  string       `json:"text,omitempty"`
	Start *astar.Point `json:"start"`
	Goal  *astar.Point `json:"goal"`
}

// Validate validates the request shape. Bounds are checked by the search.
func (r *GridRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Grid, validation.Required.When(r.Text == "").Error("grid or text is required")),
		validation.Field(&r.Text, validation.Empty.When(len(r.Grid) > 0).Error("grid and text are mutually exclusive")),
		validation.Field(&r.Start, validation.NotNil),
		validation.Field(&r.Goal, validation.NotNil),
	)
}

// Build decodes the grid and enforces the cell limit.
func (r *GridRequest) Build(maxCells int) (astar.Grid, error) {
	var grid astar.Grid
	if r.Text != "" {
		parsed, err := gridio.ParseString(r.Text)
		if err != nil {
			return nil, err
		}
		grid = parsed
	} else {
		grid = gridio.FromInts(r.Grid)
	}
	cells := 0
	for _, row := range grid {
		cells += len(row)
	}
	if cells > maxCells {
		return nil, fmt.Errorf("%w: grid has %d cells, limit is %d", astar.ErrInvalidInput, cells, maxCells)
	}
	return grid, nil
}

// SolveRequest is the body of POST /api/solve.
type SolveRequest struct {
	GridRequest
	Style string `json:"style,omitempty"`
}

// Validate validates the request.
func (r *SolveRequest) Validate() error {
	if err := r.GridRequest.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(r,
		validation.Field(&r.Style, validation.By(func(value interface{}) error {
			_, err := gridio.ParseStyle(value.(string))
			return err
		})),
	)
}

// SolveResponse is the body returned by POST /api/solve.
type SolveResponse struct {
	Found    bool          `json:"found"`
	Cost     int           `json:"cost"`
	Expanded int           `json:"expanded"`
	Route    []astar.Point `json:"route,omitempty"`
	Grid     astar.Grid    `json:"grid,omitempty"`
	Rendered string        `json:"rendered,omitempty"`
	Message  string        `json:"message,omitempty"`
}

// SessionResponse is returned when a step session is created.
type SessionResponse struct {
	ID   string `json:"id"`
	Rows int    `json:"rows"`
}

// StepResponse describes a step session after its latest step.
type StepResponse struct {
	ID       string        `json:"id"`
	Step     int           `json:"step"`
	Current  astar.Point   `json:"current"`
	Open     int           `json:"open"`
	Status   string        `json:"status"`
	Done     bool          `json:"done"`
	Found    bool          `json:"found"`
	Cost     int           `json:"cost,omitempty"`
	Route    []astar.Point `json:"route,omitempty"`
	Grid     astar.Grid    `json:"grid"`
}

package astar

import "fmt"

// CellState is the state of a single grid cell.
//
// During a search a cell only moves forward: Empty -> Closed -> Path.
// Obstacle cells never change. Start and Finish are written once, on success.
type CellState uint8

const (
	Empty CellState = iota
	Obstacle
	Closed
	Path
	Start
	Finish
)

var cellStateNames = [...]string{
	Empty:    "empty",
	Obstacle: "obstacle",
	Closed:   "closed",
	Path:     "path",
	Start:    "start",
	Finish:   "finish",
}

func (s CellState) String() string {
	if int(s) < len(cellStateNames) {
		return cellStateNames[s]
	}
	return fmt.Sprintf("CellState(%d)", uint8(s))
}

// ParseCellState is the inverse of String.
func ParseCellState(name string) (CellState, error) {
	for state, n := range cellStateNames {
		if n == name {
			return CellState(state), nil
		}
	}
	return Empty, fmt.Errorf("unknown cell state %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s CellState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *CellState) UnmarshalText(text []byte) error {
	state, err := ParseCellState(string(text))
	if err != nil {
		return err
	}
	*s = state
	return nil
}

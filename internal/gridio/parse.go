// Package gridio reads grids from their text format and renders them as
// text or PNG.
//
// The text format holds one row per line. Every cell is an integer
// followed by a comma: 0 is an empty cell, anything else an obstacle.
//
//	0,1,0,0,0,0,
//	0,1,0,0,0,0,
//	0,0,0,0,1,0,
package gridio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	astar "github.com/pdrpinto/gridastar"
)

const maxLineLength = 1 << 20

// Parse reads a grid from r.
func Parse(r io.Reader) (astar.Grid, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)

	grid := astar.Grid{}
	for scanner.Scan() {
		grid = append(grid, ParseLine(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	return grid, nil
}

// ParseString is Parse over a string.
func ParseString(text string) (astar.Grid, error) {
	return Parse(strings.NewReader(text))
}

// ParseLine decodes a single row. Cells are read as "integer ," pairs,
// whitespace allowed around the integer, until the first pair that does
// not parse; the row ends there.
func ParseLine(line string) []astar.CellState {
	row := []astar.CellState{}
	rest := line
	for {
		n, after, ok := readInt(rest)
		if !ok {
			return row
		}
		after = strings.TrimLeft(after, " \t\r\v\f")
		if !strings.HasPrefix(after, ",") {
			return row
		}
		if n == 0 {
			row = append(row, astar.Empty)
		} else {
			row = append(row, astar.Obstacle)
		}
		rest = after[1:]
	}
}

func readInt(s string) (int, string, bool) {
	s = strings.TrimLeft(s, " \t\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, s, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, s, false
	}
	return n, s[end:], true
}

// ReadFile loads a grid from path.
func ReadFile(path string) (astar.Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grid file: %w", err)
	}
	defer file.Close()

	grid, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}

// Format encodes the traversability of grid in the text format. Obstacles
// are written as 1, every other state as 0.
func Format(grid astar.Grid) string {
	var b strings.Builder
	for _, row := range grid {
		for _, cell := range row {
			if cell == astar.Obstacle {
				b.WriteString("1,")
			} else {
				b.WriteString("0,")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FromInts converts a matrix of integers with the same 0 / non-zero rule.
func FromInts(rows [][]int) astar.Grid {
	grid := make(astar.Grid, len(rows))
	for x, row := range rows {
		grid[x] = make([]astar.CellState, len(row))
		for y, v := range row {
			if v != 0 {
				grid[x][y] = astar.Obstacle
			}
		}
	}
	return grid
}

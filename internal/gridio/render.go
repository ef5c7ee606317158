package gridio

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	astar "github.com/pdrpinto/gridastar"
)

// Style selects the token set used by Renderer.
type Style string

const (
	StyleEmoji Style = "emoji"
	StyleASCII Style = "ascii"
)

// Styles lists the supported styles.
var Styles = []Style{StyleEmoji, StyleASCII}

// ParseStyle validates a style name. The empty string means emoji.
func ParseStyle(name string) (Style, error) {
	switch Style(strings.ToLower(name)) {
	case "", StyleEmoji:
		return StyleEmoji, nil
	case StyleASCII:
		return StyleASCII, nil
	default:
		return "", fmt.Errorf("unknown render style %q", name)
	}
}

var tokens = map[Style]map[astar.CellState]string{
	StyleEmoji: {
		astar.Obstacle: "⛰️   ",
		astar.Path:     "🚗   ",
		astar.Start:    "🚦 ",
		astar.Finish:   "🏁 ",
		astar.Empty:    "0    ",
	},
	StyleASCII: {
		astar.Obstacle: "# ",
		astar.Path:     "* ",
		astar.Start:    "S ",
		astar.Finish:   "F ",
		astar.Empty:    ". ",
	},
}

var palette = map[astar.CellState]color.Style{
	astar.Obstacle: {color.FgGray},
	astar.Path:     {color.FgYellow, color.OpBold},
	astar.Start:    {color.FgGreen, color.OpBold},
	astar.Finish:   {color.FgRed, color.OpBold},
}

// Renderer turns a grid into one token per cell, one line per row.
// Obstacle, Path, Start and Finish have their own tokens; Empty and Closed
// share the default one.
type Renderer struct {
	Style Style
	Color bool
}

// Token returns the token for a single cell.
func (r Renderer) Token(state astar.CellState) string {
	set, ok := tokens[r.Style]
	if !ok {
		set = tokens[StyleEmoji]
	}
	var token string
	switch state {
	case astar.Obstacle, astar.Path, astar.Start, astar.Finish:
		token = set[state]
	case astar.Empty, astar.Closed:
		token = set[astar.Empty]
	default:
		token = set[astar.Empty]
	}
	if r.Color {
		if style, ok := palette[state]; ok {
			return style.Sprint(token)
		}
	}
	return token
}

// Render writes grid to w.
func (r Renderer) Render(w io.Writer, grid astar.Grid) error {
	_, err := io.WriteString(w, r.String(grid))
	return err
}

// String renders grid to a string.
func (r Renderer) String(grid astar.Grid) string {
	var b strings.Builder
	for _, row := range grid {
		for _, cell := range row {
			b.WriteString(r.Token(cell))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

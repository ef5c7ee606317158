package gridio

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	astar "github.com/pdrpinto/gridastar"
)

var errCellSize = errors.New("cell size must be positive")

type rgb struct{ r, g, b float64 }

var cellColors = map[astar.CellState]rgb{
	astar.Empty:    {1, 1, 1},
	astar.Obstacle: {0.2, 0.2, 0.2},
	astar.Closed:   {0.75, 0.85, 1},
	astar.Path:     {1, 0.8, 0.2},
	astar.Start:    {0.1, 0.7, 0.2},
	astar.Finish:   {0.85, 0.1, 0.1},
}

// Draw paints grid with one cellSize x cellSize square per cell.
func Draw(grid astar.Grid, cellSize int) (image.Image, error) {
	if cellSize <= 0 {
		return nil, errCellSize
	}
	cols := 0
	for _, row := range grid {
		cols = max(cols, len(row))
	}
	if cols == 0 {
		return nil, fmt.Errorf("cannot draw an empty grid")
	}

	size := float64(cellSize)
	dc := gg.NewContext(cols*cellSize, len(grid)*cellSize)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for x, row := range grid {
		for y, cell := range row {
			c, ok := cellColors[cell]
			if !ok {
				c = cellColors[astar.Empty]
			}
			dc.DrawRectangle(float64(y)*size, float64(x)*size, size, size)
			dc.SetRGB(c.r, c.g, c.b)
			dc.Fill()
		}
	}

	if cellSize >= 4 {
		dc.SetRGB(0.85, 0.85, 0.85)
		dc.SetLineWidth(1)
		for x, row := range grid {
			for y := range row {
				dc.DrawRectangle(float64(y)*size, float64(x)*size, size, size)
			}
		}
		dc.Stroke()
	}
	return dc.Image(), nil
}

// WritePNG encodes the drawing of grid as PNG to w.
func WritePNG(w io.Writer, grid astar.Grid, cellSize int) error {
	img, err := Draw(grid, cellSize)
	if err != nil {
		return err
	}
	dc := gg.NewContextForImage(img)
	return dc.EncodePNG(w)
}

// SavePNG writes the drawing of grid to path.
func SavePNG(path string, grid astar.Grid, cellSize int) error {
	img, err := Draw(grid, cellSize)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

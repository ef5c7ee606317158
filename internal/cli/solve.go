package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/gridio"
)

type solveOptions struct {
	start    string
	goal     string
	style    string
	color    bool
	pngPath  string
	cellSize int
	watch    bool
}

type solveRun struct {
	path     string
	start    astar.Point
	goal     astar.Point
	renderer gridio.Renderer
	pngPath  string
	cellSize int
	logger   *slog.Logger
}

func buildSolveCommand(root *rootOptions) *cobra.Command {
	opts := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve a board file and print the input and the solution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.load(cmd)
			if err != nil {
				return err
			}
			run := solveRun{
				path:     args[0],
				start:    cfg.Search.Start,
				goal:     cfg.Search.Goal,
				pngPath:  opts.pngPath,
				cellSize: cfg.Render.CellSize,
				logger:   logger,
			}
			if opts.start != "" {
				if run.start, err = parsePoint(opts.start); err != nil {
					return err
				}
			}
			if opts.goal != "" {
				if run.goal, err = parsePoint(opts.goal); err != nil {
					return err
				}
			}
			styleName := cfg.Render.Style
			if cmd.Flags().Changed("style") {
				styleName = opts.style
			}
			style, err := gridio.ParseStyle(styleName)
			if err != nil {
				return err
			}
			run.renderer = gridio.Renderer{Style: style, Color: cfg.Render.Color || opts.color}
			if cmd.Flags().Changed("cell-size") {
				run.cellSize = opts.cellSize
			}

			if err := run.solve(cmd.OutOrStdout()); err != nil {
				return err
			}
			if !opts.watch {
				return nil
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return watchFile(ctx, run.path, logger, func() {
				if err := run.solve(cmd.OutOrStdout()); err != nil {
					logger.Error("solve failed", slog.String("file", run.path), slog.String("error", err.Error()))
				}
			})
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "", "start cell as x,y (default from config)")
	cmd.Flags().StringVar(&opts.goal, "goal", "", "goal cell as x,y (default from config)")
	cmd.Flags().StringVar(&opts.style, "style", "emoji", "render style: emoji or ascii")
	cmd.Flags().BoolVar(&opts.color, "color", false, "colour the rendered board")
	cmd.Flags().StringVar(&opts.pngPath, "png", "", "also write the solution as PNG to this path")
	cmd.Flags().IntVar(&opts.cellSize, "cell-size", 24, "PNG cell size in pixels")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-solve whenever the file changes")
	return cmd
}

// solve prints the board, a blank line, then the solution. An unreachable
// goal is reported, not returned as an error.
func (r *solveRun) solve(out io.Writer) error {
	grid, err := gridio.ReadFile(r.path)
	if err != nil {
		return err
	}
	if err := r.renderer.Render(out, grid); err != nil {
		return err
	}
	fmt.Fprint(out, "\n\n")

	result, err := astar.Search(grid, r.start, r.goal)
	if errors.Is(err, astar.ErrNoPath) {
		fmt.Fprint(out, "No path found!\n\n")
		r.logger.Info("no path", slog.String("file", r.path), slog.Int("expanded", result.Expanded))
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", r.path, err)
	}
	if err := r.renderer.Render(out, result.Grid); err != nil {
		return err
	}
	r.logger.Info("solved",
		slog.String("file", r.path),
		slog.Int("cost", result.Cost),
		slog.Int("expanded", result.Expanded))

	if r.pngPath != "" {
		if err := gridio.SavePNG(r.pngPath, result.Grid, r.cellSize); err != nil {
			return err
		}
		r.logger.Info("png written", slog.String("path", r.pngPath))
	}
	return nil
}

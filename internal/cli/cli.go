// Package cli implements the gridastar command line.
//
//	gridastar                      root command
//	├── solve FILE                 solve one board and print it
//	│   └── --watch                re-solve whenever FILE changes
//	├── batch MANIFEST             solve every job of a YAML manifest
//	└── serve                      start the HTTP API
//
// Every command reads the YAML config given by --config when it exists and
// falls back to built-in defaults otherwise.
package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/config"
)

// Version is reported by --version.
var Version = "dev"

type rootOptions struct {
	configFile string
}

// BuildCLI assembles the root command and its subcommands.
func BuildCLI() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "gridastar",
		Short:         "Shortest paths on occupancy grids with A*",
		Long:          "gridastar finds shortest 4-connected paths between two cells of a grid of open cells and obstacles.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "configs/gridastar.yaml", "config file path")

	rootCmd.AddCommand(
		buildSolveCommand(opts),
		buildBatchCommand(opts),
		buildServeCommand(opts),
	)
	return rootCmd
}

// load reads the configuration and builds the logger for cmd.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg := config.NewDefaultConfig()
	if err := config.LoadOptional(o.configFile, cfg); err != nil {
		return nil, nil, err
	}
	return cfg, cfg.Log.NewLogger(cmd.ErrOrStderr()), nil
}

// parsePoint reads "x,y".
func parsePoint(s string) (astar.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return astar.Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return astar.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return astar.Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return astar.Point{X: x, Y: y}, nil
}

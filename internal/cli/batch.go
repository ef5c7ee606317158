package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/gridio"
)

// Manifest lists the boards solved by the batch command.
type Manifest struct {
	Jobs []ManifestJob `yaml:"jobs"`
}

// ManifestJob is one entry of a manifest. Grid paths are relative to the
// manifest. Missing endpoints fall back to the configured defaults.
type ManifestJob struct {
	Name  string       `yaml:"name"`
	Grid  string       `yaml:"grid"`
	Start *astar.Point `yaml:"start"`
	Goal  *astar.Point `yaml:"goal"`
}

// Validate validates a job entry.
func (j ManifestJob) Validate() error {
	return validation.ValidateStruct(&j,
		validation.Field(&j.Name, validation.Required),
		validation.Field(&j.Grid, validation.Required),
	)
}

// Validate validates the manifest.
func (m *Manifest) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Jobs, validation.Required),
	)
}

func loadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return &manifest, nil
}

func buildBatchCommand(root *rootOptions) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch MANIFEST",
		Short: "Solve every board listed in a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.load(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = cfg.Search.Workers
			}
			manifest, err := loadManifest(args[0])
			if err != nil {
				return err
			}

			base := filepath.Dir(args[0])
			jobs := make([]astar.Job, 0, len(manifest.Jobs))
			for _, entry := range manifest.Jobs {
				grid, err := gridio.ReadFile(filepath.Join(base, entry.Grid))
				if err != nil {
					return fmt.Errorf("job %s: %w", entry.Name, err)
				}
				job := astar.Job{Name: entry.Name, Grid: grid, Start: cfg.Search.Start, Goal: cfg.Search.Goal}
				if entry.Start != nil {
					job.Start = *entry.Start
				}
				if entry.Goal != nil {
					job.Goal = *entry.Goal
				}
				jobs = append(jobs, job)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			logger.Info("batch started", slog.Int("jobs", len(jobs)), slog.Int("workers", workers))
			results, err := astar.SolveAll(ctx, jobs, astar.WithWorkers(workers))
			writeSummary(cmd.OutOrStdout(), results)
			return err
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent searches (default from config)")
	return cmd
}

func writeSummary(out io.Writer, results []astar.JobResult) {
	for _, r := range results {
		switch {
		case r.Err == nil && r.Result.Found:
			fmt.Fprintf(out, "%s\tfound cost=%d expanded=%d\n", r.Name, r.Result.Cost, r.Result.Expanded)
		case errors.Is(r.Err, astar.ErrNoPath):
			fmt.Fprintf(out, "%s\tno path expanded=%d\n", r.Name, r.Result.Expanded)
		case r.Err != nil:
			fmt.Fprintf(out, "%s\terror: %v\n", r.Name, r.Err)
		default:
			fmt.Fprintf(out, "%s\tskipped\n", r.Name)
		}
	}
}

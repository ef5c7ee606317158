package cli

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridastar/internal/metrics"
	"github.com/pdrpinto/gridastar/internal/server"
)

func buildServeCommand(root *rootOptions) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.HTTP.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			collector := metrics.NewCollector(registry)

			logger.Info("Configuration loaded",
				slog.String("http_address", cfg.HTTP.Address()),
				slog.Bool("metrics", cfg.Metrics.Enabled),
				slog.String("log_level", cfg.Log.Level.String()))

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return server.New(cfg, logger, collector).Run(ctx)
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (default from config)")
	return cmd
}

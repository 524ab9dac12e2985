package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ergung/position-calculator/internal/calc"
	"github.com/ergung/position-calculator/internal/metrics"
	"github.com/ergung/position-calculator/internal/server"
)

func newServeCmd(rc *rootConfig) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Long: `Serve the calculator as a JSON API.

Endpoints:
  POST /api/calculate  JSON or form body: entry, stop, max_loss, contract_size, reward
  GET  /healthz
  GET  /metrics        Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := rc.cfg.ExportOptions()
			if err != nil {
				return err
			}
			timeout, err := rc.cfg.Server.ParseShutdownTimeout()
			if err != nil {
				return fmt.Errorf("server.shutdown_timeout: %w", err)
			}
			if addr == "" {
				addr = rc.cfg.Server.Addr
			}

			svc := &calc.Service{
				Export:  opts,
				Policy:  rc.cfg.Policy,
				Logger:  rc.logger,
				Metrics: metrics.NewRecorder(),
			}
			srv := server.New(server.Config{Addr: addr, ShutdownTimeout: timeout}, svc, rc.logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

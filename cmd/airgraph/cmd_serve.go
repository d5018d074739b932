package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/airgraph/metrics"
	"github.com/katalvlaran/airgraph/server"
)

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the route network over HTTP until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			reg := metrics.NewRegistry()
			start := time.Now()
			_, err := a.load()
			reg.RecordLoad(a.store.Snapshot(), a.store.Generation(), err, time.Since(start))
			if err != nil {
				return err
			}

			srv := server.New(a.store,
				server.WithLogger(a.log),
				server.WithMetrics(reg, a.cfg.Server.Metrics),
				server.WithFarthestLimit(a.cfg.Queries.FarthestLimit),
				server.WithLoader(a.load),
			)
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.Run(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides server.addr")

	return cmd
}

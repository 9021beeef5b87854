package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/enfa/internal/cli"
	"github.com/aretw0/enfa/internal/metrics"
	httpAdapter "github.com/aretw0/enfa/pkg/adapters/http"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP conversion API",
	Long:  `Exposes conversion, closures, stored conversions and Prometheus metrics over HTTP.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.HTTPAddr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		store, closeStore, err := cli.NewStore(sc, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		m := metrics.New()
		conv := cli.NewConverter(cfg, logger, m.Hooks())

		srv := &http.Server{
			Addr: addr,
			Handler: httpAdapter.NewHandler(conv, store,
				httpAdapter.WithLogger(logger),
				httpAdapter.WithMetrics(m.Handler()),
			),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("HTTP server listening", "address", addr, "store", cfg.Store)
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case <-sc.Done():
			logger.Info("shutting down", "signal", sc.Signal())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "err", err)
				if err := srv.Close(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			}
			logger.Info("server stopped")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on (overrides http_addr)")
}

package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/wgomg/digest/internal/api"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the summarization HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port != "" {
				a.cfg.App.ServerPort = port
			}
			return a.serve(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides APP_SERVER_PORT)")

	return cmd
}

func (a *app) serve(ctx context.Context) error {
	logger := a.logger

	logger.Info(nil, "Starting Summarization Service")
	logger.Info(nil, "Environment: %s", a.cfg.App.Env)
	logger.Info(nil, "Log level: %s", a.cfg.App.LogLevel)
	logger.Info(nil, "Abstractive models enabled: %t", a.cfg.AbstractiveEnabled())

	engine, err := a.newEngine()
	if err != nil {
		logger.Error(nil, "Failed to create summarization engine: %v", err)
		return err
	}

	handler := api.NewHandler(logger, engine, a.newRunner(engine), a.samples(), api.NewMetrics(), a.cfg)

	server := &http.Server{
		Addr:              "0.0.0.0:" + a.cfg.App.ServerPort,
		Handler:           api.NewServer(handler, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info(nil, "Starting server on port %s", a.cfg.App.ServerPort)
	logger.Info(nil, "Endpoints:")
	for _, endpoint := range api.Endpoints() {
		logger.Info(nil, "  %s", endpoint)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info(nil, "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

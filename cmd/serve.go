package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	httpadapter "admanager/internal/adapter/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

// runServe starts the HTTP server and shuts it down gracefully once the
// command context is cancelled by SIGINT or SIGTERM.
func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, os.Stdout)
	if err != nil {
		slog.Error("startup failed", slog.Any("error", err))
		return err
	}
	defer a.close()
	logger := a.logger

	handler := httpadapter.NewHandler(a.console, logger, a.metrics, a.registry)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", a.cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(a.cfg.HTTP.Port)),
			slog.String("storage", a.cfg.Storage.Driver),
			slog.String("id_scheme", a.cfg.IDs.Scheme))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			logger.Error("server error", slog.Any("error", err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}

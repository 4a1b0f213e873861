package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the statistics JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	aggregator := buildAggregator(a.cfg, a.logger)

	server := &http.Server{
		Addr:              a.cfg.Addr(),
		Handler:           buildServer(aggregator, a.logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	a.logger.Info("starting portfolio stats",
		zap.String("addr", server.Addr),
		zap.String("github", a.cfg.GitHub.Handle),
		zap.String("leetcode", a.cfg.LeetCode.Handle),
		zap.String("codeforces", a.cfg.Codeforces.Handle),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

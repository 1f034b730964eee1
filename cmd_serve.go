package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/trivia-api/db"
	"github.com/danielhkuo/trivia-api/router"
)

const shutdownTimeout = 10 * time.Second

// serveCmd starts the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, cfg)
	if err != nil {
		zap.S().Errorw("database connection failed", "error", err)
		return err
	}
	defer conn.Close()

	if err := db.CreateSchema(ctx, conn, cfg.DatabaseType); err != nil {
		zap.S().Errorw("schema creation failed", "error", err)
		return err
	}
	zap.S().Infow("Database schema ready", "type", cfg.DatabaseType)

	server := &http.Server{
		Handler:           router.NewRouter(conn, cfg),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zap.S().Infow("Listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		// Wait for Ctrl-C, SIGTERM or a listener failure
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zap.S().Errorw("Server closed", "error", err)
		return err
	}

	zap.S().Info("Server closed")
	return nil
}

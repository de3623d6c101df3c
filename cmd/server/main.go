package main

// Storefront backend for Vital Coffee Roasters.

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vitalroasters/storefront/app"
	"github.com/vitalroasters/storefront/server"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Configured logging is not available until the app has parsed its
	// environment, so startup failures go to a plain stderr logger.
	bootLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	application, err := app.New()
	if err != nil {
		bootLogger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	srv, err := server.New(application.Config, application.Logger, application.Handlers)
	if err != nil {
		bootLogger.Error("server setup failed", "error", err)
		application.Close()
		os.Exit(1)
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Run()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		application.Close()
		if err != nil {
			application.Logger.Error("server failed", "error", err)
			os.Exit(1)
		}
		return
	case sig := <-quit:
		application.Logger.Info("shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	err = srv.Close(ctx)
	cancel()
	application.Close()
	if err != nil {
		application.Logger.Error("shutdown incomplete", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AdamBeresnev/bracketeer/internal/config"
	"github.com/AdamBeresnev/bracketeer/internal/live"
	"github.com/AdamBeresnev/bracketeer/internal/service"
	"github.com/alexedwards/scs/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger()
	slog.SetDefault(logger)

	hub := live.NewHub(logger)

	tournaments := service.NewTournamentService(service.Options{
		ThirdPlace: cfg.ThirdPlace,
		BestOf:     cfg.BestOf,
		Strict:     cfg.Strict,
		Logger:     logger,
		Render: func(e service.Event) {
			hub.Publish(e)
		},
	})

	// Preferences only; the in-memory store is enough for a local tool.
	sessionManager := scs.New()
	sessionManager.Lifetime = cfg.SessionLifetime

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(tournaments, sessionManager, hub, cfg.DefaultTheme),
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return hub.Run(ctx)
	})

	g.Go(func() error {
		logger.Info("server starting", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

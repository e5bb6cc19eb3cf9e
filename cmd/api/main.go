// Package main is the entry point for the calendrics API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/zapponejosh/calendrics-api/internal/api"
	"github.com/zapponejosh/calendrics-api/internal/astronomy"
	"github.com/zapponejosh/calendrics-api/internal/calendar"
	"github.com/zapponejosh/calendrics-api/internal/config"
	"github.com/zapponejosh/calendrics-api/internal/database"
	"github.com/zapponejosh/calendrics-api/internal/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup structured logging
	log := logger.Setup(cfg)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting calendrics API",
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
		slog.Bool("cache_enabled", cfg.CacheEnabled),
	)

	var (
		db    *database.DB
		store calendar.YearInfoStore[calendar.HijriYearInfo]
	)
	if cfg.CacheEnabled {
		if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create database directory: %w", err)
			}
		}
		var err error
		db, err = database.Open(database.DefaultConfig(cfg.DatabasePath), logger.Component(log, "database"))
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		applied, err := db.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
		log.Info("database ready", slog.String("path", cfg.DatabasePath), slog.Int("migrations_applied", applied))
		store = database.NewHijriYearStore(db)
	}

	var metrics *api.Metrics
	var observer calendar.CacheObserver
	if cfg.MetricsEnabled {
		metrics = api.NewMetrics()
		observer = metrics
	}

	registry := calendar.NewRegistry(calendar.RegistryConfig{
		Ephemeris:    astronomy.Astronomical{},
		CacheEnabled: cfg.CacheEnabled,
		Store:        store,
		Observer:     observer,
		Logger:       logger.Component(log, "calendar"),
	})

	handlers := api.NewHandlers(db, registry, cfg, log)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.SetupRoutes(handlers, cfg, metrics, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("calendrics API ready", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

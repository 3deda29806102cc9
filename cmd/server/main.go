package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/onboard/internal/api"
	"github.com/dgallion1/onboard/internal/auth"
	"github.com/dgallion1/onboard/internal/config"
	"github.com/dgallion1/onboard/internal/extractor"
	"github.com/dgallion1/onboard/internal/pipeline"
	"github.com/dgallion1/onboard/internal/store"
)

func main() {
	cfg := config.Load()
	log := config.NewLogger(cfg.LogLevel, os.Stdout)
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	tokens, err := auth.NewIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	if err != nil {
		log.Error("invalid auth configuration", "error", err)
		os.Exit(1)
	}

	// Initialize persistence.
	stores := store.NewMemoryStores()
	if cfg.DatabaseURL != "" {
		db, err := store.OpenPostgres(cfg.DatabaseURL, log)
		if err != nil {
			log.Error("database", "error", err)
			os.Exit(1)
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		stores = store.NewGormStores(db)
		log.Info("using postgres store")
	} else {
		log.Warn("DATABASE_URL not set, records are kept in memory")
	}

	ex := extractor.New(log)
	pool := pipeline.NewPool(ex, cfg.ExtractWorkers, cfg.ExtractTimeout, log)

	// Initialize HTTP server.
	srv := api.NewServer(stores, ex, pool, tokens, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	done := make(chan struct{})
	go func() {
		defer close(done)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting onboard", "port", cfg.Port, "extract_workers", pool.Workers())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	<-done
}

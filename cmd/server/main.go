package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecofinds/marketplace/internal/api"
	"github.com/ecofinds/marketplace/internal/core/service"
	"github.com/ecofinds/marketplace/internal/infrastructure/config"
	store "github.com/ecofinds/marketplace/internal/infrastructure/store/badger"
	"github.com/ecofinds/marketplace/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := store.Open(store.Config{
		Dir:        cfg.Store.Dir,
		InMemory:   cfg.Store.InMemory,
		SyncWrites: cfg.Store.SyncWrites,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer db.Close()

	st := store.NewStore(db, log)

	if cfg.SeedDemoData {
		users := store.NewUserRepository(st)
		products := store.NewProductRepository(st)
		catalog := service.NewCatalogService(users, products, log)
		if err := catalog.EnsureSeeded(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo data")
		}
	}

	e := api.NewRouter(st, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("data_dir", cfg.Store.Dir).Msg("marketplace listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	log.Info().Msg("server stopped")
}

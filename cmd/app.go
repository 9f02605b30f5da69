package cmd

import (
	"context"
	"fmt"

	config "github.com/maiquockhanh06/Timeflow-app/internal/configs"
	repository "github.com/maiquockhanh06/Timeflow-app/internal/repositories"
	"github.com/maiquockhanh06/Timeflow-app/internal/services"
)

// app is the wired engine shared by every command.
type app struct {
	cfg      config.Config
	services *services.Services
	close    func()
}

func newApp(ctx context.Context) (*app, error) {
	loadEnv()

	cfg := config.Load()
	database := config.NewDatabaseClient(cfg.DatabaseDSN)
	store := repository.NewStore(database)

	seed, err := config.LoadSeed(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	if err := seed.Apply(ctx, store, cfg.OwnerID); err != nil {
		return nil, fmt.Errorf("apply seed: %w", err)
	}

	summaries, closeCache := config.NewSummaryCache(cfg)

	return &app{
		cfg:      cfg,
		services: services.New(store, summaries, cfg.ShareCodeAttempts),
		close: func() {
			closeCache()
			if sqlDB, err := database.DB(); err == nil {
				_ = sqlDB.Close()
			}
		},
	}, nil
}

// withApp runs fn against a freshly wired app and releases it afterwards.
func withApp(ctx context.Context, fn func(a *app) error) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	return fn(a)
}

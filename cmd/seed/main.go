package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/zachbowman/brandboard-backend/pkg/config"
	"github.com/zachbowman/brandboard-backend/pkg/db"
	"github.com/zachbowman/brandboard-backend/pkg/logger"
	"github.com/zachbowman/brandboard-backend/pkg/migrate"
	"github.com/zachbowman/brandboard-backend/pkg/seed"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	dbClient, err := db.New(context.Background(), cfg.DB, cfg.FeatureFlags, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.Run(context.Background(), dbClient); err != nil {
		logg.Error(context.Background(), "failed to migrate schema", err)
		os.Exit(1)
	}

	if err := seed.Run(context.Background(), dbClient, logg); err != nil {
		logg.Error(context.Background(), "failed to seed demo data", err)
		os.Exit(1)
	}

	logg.Info(context.Background(), "seed complete")
}

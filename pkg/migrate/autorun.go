package migrate

import (
	"context"
	"fmt"

	"github.com/zachbowman/brandboard-backend/pkg/config"
	"github.com/zachbowman/brandboard-backend/pkg/db"
	"github.com/zachbowman/brandboard-backend/pkg/db/models"
	"github.com/zachbowman/brandboard-backend/pkg/logger"
)

func allModels() []any {
	return []any{
		&models.Brand{},
		&models.Financial{},
		&models.AdCampaign{},
		&models.AiAgent{},
		&models.ProductMarketFit{},
		&models.Task{},
		&models.Meeting{},
	}
}

// Run applies the schema for every dashboard entity.
func Run(ctx context.Context, client *db.Client) error {
	if err := client.DB().WithContext(ctx).AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("automigrating schema: %w", err)
	}
	return nil
}

// MaybeRunDev applies migrations automatically when the app runs in dev
// mode with the feature flag enabled.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	ctx = logg.WithField(ctx, "env", cfg.App.Env)
	logg.Info(ctx, "running schema migration (dev auto-run)")

	if err := Run(ctx, client); err != nil {
		return err
	}

	logg.Info(ctx, "schema migration completed")
	return nil
}

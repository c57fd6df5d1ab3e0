package database

import (
	"context"
	"fmt"
	"log/slog"

	"holocron/internal/config"
	"holocron/internal/middleware"
	"holocron/internal/models"

	"gorm.io/gorm"
)

// PersistentModels returns the authoritative set of schema-managed GORM models.
// Parents come before the tables that reference them.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Planet{},
		&models.Character{},
		&models.Favorites{},
		&models.FavoritesPlanet{},
		&models.FavoritesCharacter{},
	}
}

// shouldAutoMigrate reports whether Connect should run AutoMigrate.
// Production only migrates when DB_AUTOMIGRATE is set explicitly.
func shouldAutoMigrate(cfg *config.Config) bool {
	return !cfg.IsProduction() || cfg.DBAutoMigrate
}

// ApplySchema runs AutoMigrate when the environment allows it.
func ApplySchema(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if !shouldAutoMigrate(cfg) {
		middleware.Logger.Info("Skipping AutoMigrate", slog.String("env", cfg.Env))
		return nil
	}

	middleware.Logger.Info("Running GORM AutoMigrate", slog.String("env", cfg.Env))
	if err := Migrate(ctx, db); err != nil {
		return err
	}
	middleware.Logger.Info("Database migration completed")
	return nil
}

// Migrate creates or updates every table in PersistentModels.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(PersistentModels()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

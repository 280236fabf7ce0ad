package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"tenanttheme/internal/models"
)

// Migrate creates the theme, tenant and component tables when they are
// missing. Theme is migrated before tenant so the foreign key can be created.
func Migrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if db == nil {
		return fmt.Errorf("database handle is nil")
	}

	migrations := []any{
		&models.Theme{},
		&models.Tenant{},
		&models.Component{},
	}

	for i, model := range migrations {
		log.Debug().Msgf("Running migration %d/%d", i+1, len(migrations))
		if err := db.WithContext(ctx).AutoMigrate(model); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Info().Msg("All migrations completed successfully")
	return nil
}

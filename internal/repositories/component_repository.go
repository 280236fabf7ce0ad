package repositories

import (
	"context"

	"gorm.io/gorm"

	"tenanttheme/internal/models"
)

type ComponentRepository struct {
	db *gorm.DB
}

func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{db: db}
}

// ListAll returns the global component catalog ordered by id.
func (r *ComponentRepository) ListAll(ctx context.Context) ([]models.Component, error) {
	components := make([]models.Component, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&components).Error; err != nil {
		return nil, err
	}
	return components, nil
}

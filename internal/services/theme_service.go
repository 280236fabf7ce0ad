package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"tenanttheme/internal/models"
)

// TenantThemeStore looks up a tenant joined to its theme.
type TenantThemeStore interface {
	FindByIDWithTheme(ctx context.Context, id int64) (*models.Tenant, error)
}

// ComponentStore lists the global component catalog.
type ComponentStore interface {
	ListAll(ctx context.Context) ([]models.Component, error)
}

// ThemeService resolves the theme configuration a tenant's dashboard renders with.
type ThemeService struct {
	tenants    TenantThemeStore
	components ComponentStore
}

func NewThemeService(tenants TenantThemeStore, components ComponentStore) *ThemeService {
	return &ThemeService{
		tenants:    tenants,
		components: components,
	}
}

// ResolveThemeConfig returns the configuration for tenantID. A nil config with
// a nil error means the tenant does not exist or its theme cannot be resolved.
// Every call reads the store; nothing is cached.
func (s *ThemeService) ResolveThemeConfig(ctx context.Context, tenantID int64) (*models.ThemeConfig, error) {
	tenant, err := s.tenants.FindByIDWithTheme(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant %d: %w", tenantID, err)
	}
	if tenant == nil {
		return nil, nil
	}
	if tenant.Theme == nil {
		zerolog.Ctx(ctx).Warn().
			Int64("tenant_id", tenant.ID).
			Int64("theme_id", tenant.ThemeID).
			Msg("tenant references a missing theme")
		return nil, nil
	}

	components, err := s.components.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load components: %w", err)
	}

	cfg := models.NewThemeConfig(*tenant, *tenant.Theme, components)
	return &cfg, nil
}

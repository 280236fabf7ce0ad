package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenanttheme/internal/database/dbtest"
	"tenanttheme/internal/models"
	"tenanttheme/internal/repositories"
)

type stubTenantStore struct {
	tenant *models.Tenant
	err    error
	calls  int
}

func (s *stubTenantStore) FindByIDWithTheme(context.Context, int64) (*models.Tenant, error) {
	s.calls++
	return s.tenant, s.err
}

type stubComponentStore struct {
	components []models.Component
	err        error
	calls      int
}

func (s *stubComponentStore) ListAll(context.Context) ([]models.Component, error) {
	s.calls++
	return s.components, s.err
}

func newSeededThemeService(t *testing.T) (*ThemeService, *repositories.TenantRepository) {
	t.Helper()

	db := dbtest.New(t)
	tenants := repositories.NewTenantRepository(db)
	return NewThemeService(tenants, repositories.NewComponentRepository(db)), tenants
}

func TestResolveThemeConfigForAcmeRetail(t *testing.T) {
	svc, _ := newSeededThemeService(t)

	cfg, err := svc.ResolveThemeConfig(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, models.ThemeConfigTenant{ID: 1, Name: "Acme Retail", Slug: "acme-retail"}, cfg.Tenant)
	assert.Equal(t, "Aurora Retail", cfg.Theme.Name)
	assert.Equal(t, models.ThemeColors{Primary: "#2D6A4F", Secondary: "#FF9F1C", Base: "#F1FAEE"}, cfg.Theme.Colors)
	assert.Equal(t, models.ThemeFonts{Heading: "Poppins", Body: "Inter", Mono: "Fira Code"}, cfg.Theme.Fonts)

	require.Len(t, cfg.Components, 10)
	byKey := make(map[string]models.ThemeConfigComponent, len(cfg.Components))
	for _, c := range cfg.Components {
		byKey[c.Key] = c
	}
	assert.True(t, byKey["app_header"].IsThemeCustomizable)
	assert.False(t, byKey["search_bar"].IsThemeCustomizable)
	assert.Equal(t, "Application Header", byKey["app_header"].Label)
}

func TestResolveThemeConfigSharesComponentCatalog(t *testing.T) {
	svc, tenants := newSeededThemeService(t)
	ctx := context.Background()

	summaries, err := tenants.ListSummaries(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, summaries)

	var catalog []models.ThemeConfigComponent
	themeNames := make(map[string]bool)
	for _, summary := range summaries {
		cfg, err := svc.ResolveThemeConfig(ctx, summary.ID)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, summary.ID, cfg.Tenant.ID)
		assert.Equal(t, summary.ThemeID, cfg.Theme.ID)
		themeNames[cfg.Theme.Name] = true

		if catalog == nil {
			catalog = cfg.Components
			continue
		}
		assert.Equal(t, catalog, cfg.Components, "tenant %d", summary.ID)
	}
	assert.Len(t, themeNames, 3)
}

func TestResolveThemeConfigUnknownTenantIsAbsent(t *testing.T) {
	svc, _ := newSeededThemeService(t)

	for _, id := range []int64{0, -7, 4, 9999} {
		cfg, err := svc.ResolveThemeConfig(context.Background(), id)
		require.NoError(t, err, "id %d", id)
		assert.Nil(t, cfg, "id %d", id)
	}
}

func TestResolveThemeConfigReadsLatestState(t *testing.T) {
	db := dbtest.New(t)
	svc := NewThemeService(repositories.NewTenantRepository(db), repositories.NewComponentRepository(db))
	ctx := context.Background()

	before, err := svc.ResolveThemeConfig(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, before)
	assert.Equal(t, "Aurora Retail", before.Theme.Name)

	require.NoError(t, db.Model(&models.Tenant{}).Where("id = ?", 1).Update("theme_id", 3).Error)

	after, err := svc.ResolveThemeConfig(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, "Summit Finance", after.Theme.Name)
	assert.Equal(t, "#3A0CA3", after.Theme.Colors.Primary)
}

func TestResolveThemeConfigMissingThemeIsAbsent(t *testing.T) {
	tenants := &stubTenantStore{tenant: &models.Tenant{ID: 5, Name: "Ghost", Slug: "ghost", ThemeID: 77}}
	components := &stubComponentStore{}
	svc := NewThemeService(tenants, components)

	cfg, err := svc.ResolveThemeConfig(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, cfg)
	assert.Zero(t, components.calls, "components must not be loaded for an unresolvable theme")
}

func TestResolveThemeConfigWrapsStorageErrors(t *testing.T) {
	boom := errors.New("connection refused")

	svc := NewThemeService(&stubTenantStore{err: boom}, &stubComponentStore{})
	_, err := svc.ResolveThemeConfig(context.Background(), 1)
	assert.ErrorIs(t, err, boom)

	tenant := &models.Tenant{ID: 1, ThemeID: 1, Theme: &models.Theme{ID: 1}}
	svc = NewThemeService(&stubTenantStore{tenant: tenant}, &stubComponentStore{err: boom})
	cfg, err := svc.ResolveThemeConfig(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, cfg)
}

func TestResolveThemeConfigEmptyCatalogEncodesAsList(t *testing.T) {
	tenant := &models.Tenant{ID: 1, ThemeID: 1, Theme: &models.Theme{ID: 1, Name: "Plain"}}
	svc := NewThemeService(&stubTenantStore{tenant: tenant}, &stubComponentStore{})

	cfg, err := svc.ResolveThemeConfig(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.NotNil(t, cfg.Components)
	assert.Empty(t, cfg.Components)
}

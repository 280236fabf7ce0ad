package repositories

import (
	"context"

	"gorm.io/gorm"

	"tenanttheme/internal/models"
)

// TenantRepository reads tenants together with their theme using explicit joins.
type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// tenantThemeRow is one tenant LEFT JOINed to its theme. The theme columns are
// pointers so a dangling theme_id scans as nil instead of zero values.
type tenantThemeRow struct {
	TenantID       int64
	TenantName     string
	TenantSlug     string
	ThemeID        int64
	JoinedThemeID  *int64
	ThemeName      *string
	PrimaryColor   *string
	SecondaryColor *string
	BaseColor      *string
	HeadingFont    *string
	BodyFont       *string
	MonoFont       *string
}

const tenantThemeColumns = `
	tenant.id AS tenant_id,
	tenant.name AS tenant_name,
	tenant.slug AS tenant_slug,
	tenant.theme_id AS theme_id,
	theme.id AS joined_theme_id,
	theme.name AS theme_name,
	theme.primary_color AS primary_color,
	theme.secondary_color AS secondary_color,
	theme.base_color AS base_color,
	theme.heading_font AS heading_font,
	theme.body_font AS body_font,
	theme.mono_font AS mono_font`

func (r *TenantRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("tenant").
		Select(tenantThemeColumns).
		Joins("LEFT JOIN theme ON theme.id = tenant.theme_id")
}

// FindByIDWithTheme returns the tenant with Theme populated, or nil when no
// tenant has that id. Theme is nil when the referenced row does not exist.
func (r *TenantRepository) FindByIDWithTheme(ctx context.Context, id int64) (*models.Tenant, error) {
	var rows []tenantThemeRow
	err := r.joined(ctx).
		Where("tenant.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	tenant := rows[0].toTenant()
	return &tenant, nil
}

// ListSummaries returns every tenant with its theme name, ordered by id.
func (r *TenantRepository) ListSummaries(ctx context.Context) ([]models.TenantSummary, error) {
	var rows []tenantThemeRow
	err := r.joined(ctx).
		Order("tenant.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]models.TenantSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, models.TenantSummary{
			ID:        row.TenantID,
			Name:      row.TenantName,
			Slug:      row.TenantSlug,
			ThemeID:   row.ThemeID,
			ThemeName: row.ThemeName,
		})
	}
	return summaries, nil
}

func (row tenantThemeRow) toTenant() models.Tenant {
	tenant := models.Tenant{
		ID:      row.TenantID,
		Name:    row.TenantName,
		Slug:    row.TenantSlug,
		ThemeID: row.ThemeID,
	}
	if row.JoinedThemeID == nil {
		return tenant
	}

	tenant.Theme = &models.Theme{
		ID:             *row.JoinedThemeID,
		Name:           deref(row.ThemeName),
		PrimaryColor:   deref(row.PrimaryColor),
		SecondaryColor: deref(row.SecondaryColor),
		BaseColor:      deref(row.BaseColor),
		HeadingFont:    deref(row.HeadingFont),
		BodyFont:       deref(row.BodyFont),
		MonoFont:       deref(row.MonoFont),
	}
	return tenant
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

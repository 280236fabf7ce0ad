package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"tenanttheme/internal/models"
)

type tenantSeed struct {
	Name      string
	Slug      string
	ThemeName string
}

var seedThemes = []models.Theme{
	{
		Name:           "Aurora Retail",
		PrimaryColor:   "#2D6A4F",
		SecondaryColor: "#FF9F1C",
		BaseColor:      "#F1FAEE",
		HeadingFont:    "Poppins",
		BodyFont:       "Inter",
		MonoFont:       "Fira Code",
	},
	{
		Name:           "Nebula Health",
		PrimaryColor:   "#005F73",
		SecondaryColor: "#EE6C4D",
		BaseColor:      "#F8F9FA",
		HeadingFont:    "Montserrat",
		BodyFont:       "Lato",
		MonoFont:       "Source Code Pro",
	},
	{
		Name:           "Summit Finance",
		PrimaryColor:   "#3A0CA3",
		SecondaryColor: "#F72585",
		BaseColor:      "#F5F3FF",
		HeadingFont:    "Roboto Slab",
		BodyFont:       "Nunito Sans",
		MonoFont:       "JetBrains Mono",
	},
}

var seedTenants = []tenantSeed{
	{Name: "Acme Retail", Slug: "acme-retail", ThemeName: "Aurora Retail"},
	{Name: "Bluebird Clinics", Slug: "bluebird-clinics", ThemeName: "Nebula Health"},
	{Name: "Summit Capital", Slug: "summit-capital", ThemeName: "Summit Finance"},
}

var seedComponents = []models.Component{
	{ComponentKey: "app_header", Label: "Application Header", IsThemeCustomizable: true},
	{ComponentKey: "kpi_cards", Label: "KPI Cards", IsThemeCustomizable: true},
	{ComponentKey: "quick_actions", Label: "Quick Action Buttons", IsThemeCustomizable: true},
	{ComponentKey: "search_bar", Label: "Search and Filters", IsThemeCustomizable: false},
	{ComponentKey: "alerts_panel", Label: "Alerts Panel", IsThemeCustomizable: true},
	{ComponentKey: "recent_table", Label: "Recent Activity Table", IsThemeCustomizable: false},
	{ComponentKey: "status_chips", Label: "Status Chips", IsThemeCustomizable: true},
	{ComponentKey: "tabs_panel", Label: "Tabbed Insights", IsThemeCustomizable: false},
	{ComponentKey: "announcement_list", Label: "Announcements List", IsThemeCustomizable: true},
	{ComponentKey: "footer", Label: "Footer Section", IsThemeCustomizable: true},
}

// Seed inserts the fixed themes, tenants and components. Each table is only
// seeded while it is empty, so running it again never duplicates rows.
func Seed(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if db == nil {
		return fmt.Errorf("database handle is nil")
	}
	db = db.WithContext(ctx)

	if err := seedThemeTable(db, log); err != nil {
		return err
	}
	if err := seedTenantTable(db, log); err != nil {
		return err
	}
	return seedComponentTable(db, log)
}

func seedThemeTable(db *gorm.DB, log zerolog.Logger) error {
	empty, err := isEmpty(db, &models.Theme{})
	if err != nil {
		return fmt.Errorf("seed check themes: %w", err)
	}
	if !empty {
		log.Debug().Str("table", "theme").Msg("table already seeded, skipping")
		return nil
	}

	themes := make([]models.Theme, len(seedThemes))
	copy(themes, seedThemes)
	if err := db.Create(&themes).Error; err != nil {
		return fmt.Errorf("seed insert themes: %w", err)
	}
	log.Info().Str("table", "theme").Int("rows", len(themes)).Msg("table seeded")
	return nil
}

func seedTenantTable(db *gorm.DB, log zerolog.Logger) error {
	empty, err := isEmpty(db, &models.Tenant{})
	if err != nil {
		return fmt.Errorf("seed check tenants: %w", err)
	}
	if !empty {
		log.Debug().Str("table", "tenant").Msg("table already seeded, skipping")
		return nil
	}

	tenants := make([]models.Tenant, 0, len(seedTenants))
	for _, seed := range seedTenants {
		var theme models.Theme
		if err := db.Where("name = ?", seed.ThemeName).Order("id ASC").First(&theme).Error; err != nil {
			return fmt.Errorf("seed resolve theme %q for tenant %q: %w", seed.ThemeName, seed.Name, err)
		}
		tenants = append(tenants, models.Tenant{
			Name:    seed.Name,
			Slug:    seed.Slug,
			ThemeID: theme.ID,
		})
	}

	if err := db.Create(&tenants).Error; err != nil {
		return fmt.Errorf("seed insert tenants: %w", err)
	}
	log.Info().Str("table", "tenant").Int("rows", len(tenants)).Msg("table seeded")
	return nil
}

func seedComponentTable(db *gorm.DB, log zerolog.Logger) error {
	empty, err := isEmpty(db, &models.Component{})
	if err != nil {
		return fmt.Errorf("seed check components: %w", err)
	}
	if !empty {
		log.Debug().Str("table", "component").Msg("table already seeded, skipping")
		return nil
	}

	components := make([]models.Component, len(seedComponents))
	copy(components, seedComponents)
	if err := db.Create(&components).Error; err != nil {
		return fmt.Errorf("seed insert components: %w", err)
	}
	log.Info().Str("table", "component").Int("rows", len(components)).Msg("table seeded")
	return nil
}

func isEmpty(db *gorm.DB, model any) (bool, error) {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

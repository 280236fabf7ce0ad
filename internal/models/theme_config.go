package models

// ThemeConfig is the denormalized payload served to the frontend for one tenant.
type ThemeConfig struct {
	Tenant     ThemeConfigTenant      `json:"tenant"`
	Theme      ThemeConfigTheme       `json:"theme"`
	Components []ThemeConfigComponent `json:"components"`
}

type ThemeConfigTenant struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ThemeConfigTheme struct {
	ID     int64       `json:"id"`
	Name   string      `json:"name"`
	Colors ThemeColors `json:"colors"`
	Fonts  ThemeFonts  `json:"fonts"`
}

type ThemeColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Base      string `json:"base"`
}

type ThemeFonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
	Mono    string `json:"mono"`
}

type ThemeConfigComponent struct {
	ID                  int64  `json:"id"`
	Key                 string `json:"key"`
	Label               string `json:"label"`
	IsThemeCustomizable bool   `json:"isThemeCustomizable"`
}

// NewThemeConfig assembles the payload from a tenant, its theme and the component catalog.
func NewThemeConfig(tenant Tenant, theme Theme, components []Component) ThemeConfig {
	cfg := ThemeConfig{
		Tenant: ThemeConfigTenant{
			ID:   tenant.ID,
			Name: tenant.Name,
			Slug: tenant.Slug,
		},
		Theme: ThemeConfigTheme{
			ID:   theme.ID,
			Name: theme.Name,
			Colors: ThemeColors{
				Primary:   theme.PrimaryColor,
				Secondary: theme.SecondaryColor,
				Base:      theme.BaseColor,
			},
			Fonts: ThemeFonts{
				Heading: theme.HeadingFont,
				Body:    theme.BodyFont,
				Mono:    theme.MonoFont,
			},
		},
		Components: make([]ThemeConfigComponent, 0, len(components)),
	}
	for _, c := range components {
		cfg.Components = append(cfg.Components, ThemeConfigComponent{
			ID:                  c.ID,
			Key:                 c.ComponentKey,
			Label:               c.Label,
			IsThemeCustomizable: c.IsThemeCustomizable,
		})
	}
	return cfg
}

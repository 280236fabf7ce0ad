package models

import "time"

// Tenant matches the tenant table. ThemeID is a required foreign key to theme:
// deleting a referenced theme is rejected, id updates cascade.
type Tenant struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Slug      string    `gorm:"size:80;not null;uniqueIndex" json:"slug"`
	ThemeID   int64     `gorm:"column:theme_id;not null;index" json:"theme_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Theme is filled by explicit join queries; nil means the referenced row is missing.
	Theme *Theme `gorm:"foreignKey:ThemeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"theme,omitempty"`
}

func (Tenant) TableName() string {
	return "tenant"
}

// TenantSummary is one row of the tenant selector.
type TenantSummary struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	ThemeID   int64   `json:"theme_id"`
	ThemeName *string `json:"theme_name"`
}

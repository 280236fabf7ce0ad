package models

import "time"

// Component is a UI region of the dashboard. The catalog is global, not tenant scoped.
type Component struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ComponentKey        string    `gorm:"column:component_key;size:120;not null;uniqueIndex" json:"component_key"`
	Label               string    `gorm:"size:120;not null" json:"label"`
	IsThemeCustomizable bool      `gorm:"column:is_theme_customizable;not null;default:false" json:"is_theme_customizable"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Component) TableName() string {
	return "component"
}

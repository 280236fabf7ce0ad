package models

import "time"

// Theme matches the theme table: a named bundle of colors and fonts.
// Color and font values are opaque strings handed to the frontend as-is.
type Theme struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"size:80;not null" json:"name"`
	PrimaryColor   string    `gorm:"column:primary_color;size:20;not null" json:"primary_color"`
	SecondaryColor string    `gorm:"column:secondary_color;size:20;not null" json:"secondary_color"`
	BaseColor      string    `gorm:"column:base_color;size:20;not null" json:"base_color"`
	HeadingFont    string    `gorm:"column:heading_font;size:80;not null" json:"heading_font"`
	BodyFont       string    `gorm:"column:body_font;size:80;not null" json:"body_font"`
	MonoFont       string    `gorm:"column:mono_font;size:80;not null" json:"mono_font"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Theme) TableName() string {
	return "theme"
}

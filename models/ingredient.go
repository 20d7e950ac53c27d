package models

import "gorm.io/gorm"

// Catalog reference data; pantry entries and recipe requirements point at it by ID.
type Ingredient struct {
	gorm.Model
	Name     string `gorm:"index;not null" json:"name"`
	Category string `gorm:"size:100" json:"category,omitempty"`
	Unit     string `gorm:"size:50;default:grams" json:"unit"` // grams, ml, pieces, …
}

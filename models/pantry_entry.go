package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PantryEntry is one lot of an ingredient a user owns. The same ingredient
// may appear in several entries (bought on different days, expiring at
// different times).
type PantryEntry struct {
	gorm.Model
	UserID       uint       `gorm:"index;not null" json:"user_id"`
	IngredientID uint       `gorm:"index;not null" json:"ingredient_id"`
	Ingredient   Ingredient `json:"ingredient,omitempty"`

	Amount         decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	ExpirationDate *time.Time      `gorm:"type:date" json:"expiration_date,omitempty"`
	Notes          string          `gorm:"size:500" json:"notes,omitempty"`
}

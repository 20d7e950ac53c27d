package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecipeRequirement is one ingredient a recipe calls for. The amount is
// display data only; suggestion scoring looks at presence, not quantity.
type RecipeRequirement struct {
	gorm.Model
	RecipeID     uint       `gorm:"index;not null" json:"recipe_id"`
	IngredientID uint       `gorm:"index;not null" json:"ingredient_id"`
	Ingredient   Ingredient `json:"ingredient,omitempty"`

	Amount decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Notes  string          `gorm:"size:500" json:"notes,omitempty"` // e.g. "chopped", "diced"
}

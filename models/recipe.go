package models

import "gorm.io/gorm"

type Recipe struct {
	gorm.Model
	OwnerID uint `gorm:"index;not null" json:"owner_id"`

	Name            string `gorm:"not null" json:"name"`
	Description     string `gorm:"size:1000" json:"description,omitempty"`
	Instructions    string `gorm:"size:5000" json:"instructions,omitempty"`
	PrepTimeMinutes *int   `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes *int   `json:"cook_time_minutes,omitempty"`
	Servings        *int   `json:"servings,omitempty"`
	Difficulty      string `gorm:"size:50" json:"difficulty,omitempty"` // easy, medium, hard
	Cuisine         string `gorm:"size:100" json:"cuisine,omitempty"`
	ImageURL        string `gorm:"size:512" json:"image_url,omitempty"`

	Requirements []RecipeRequirement `gorm:"constraint:OnDelete:CASCADE" json:"recipe_ingredients,omitempty"`
}

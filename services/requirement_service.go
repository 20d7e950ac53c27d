package services

import (
	"github.com/Ondrysak/GastroTartarus/config"
	"github.com/Ondrysak/GastroTartarus/models"

	"github.com/shopspring/decimal"
)

func CreateRequirement(recipeID, ingredientID uint, amount decimal.Decimal, notes string) (*models.RecipeRequirement, error) {
	var ing models.Ingredient
	if err := config.DB.First(&ing, ingredientID).Error; err != nil {
		return nil, err
	}

	req := models.RecipeRequirement{
		RecipeID:     recipeID,
		IngredientID: ingredientID,
		Amount:       amount,
		Notes:        notes,
	}
	if err := config.DB.Create(&req).Error; err != nil {
		return nil, err
	}
	req.Ingredient = ing
	return &req, nil
}

func GetRequirement(id uint) (*models.RecipeRequirement, error) {
	var req models.RecipeRequirement
	if err := config.DB.Preload("Ingredient").First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func ListRequirements(recipeID uint, skip, limit int) ([]models.RecipeRequirement, int64, error) {
	q := config.DB.Model(&models.RecipeRequirement{}).Where("recipe_id = ?", recipeID)

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var reqs []models.RecipeRequirement
	err := q.Preload("Ingredient").Offset(skip).Limit(limit).Find(&reqs).Error
	return reqs, count, err
}

func UpdateRequirement(id uint, ingredientID *uint, amount *decimal.Decimal, notes *string) (*models.RecipeRequirement, error) {
	var req models.RecipeRequirement
	if err := config.DB.First(&req, id).Error; err != nil {
		return nil, err
	}

	if ingredientID != nil {
		var ing models.Ingredient
		if err := config.DB.First(&ing, *ingredientID).Error; err != nil {
			return nil, err
		}
		req.IngredientID = *ingredientID
	}
	if amount != nil {
		req.Amount = *amount
	}
	if notes != nil {
		req.Notes = *notes
	}

	if err := config.DB.Save(&req).Error; err != nil {
		return nil, err
	}
	return GetRequirement(req.ID)
}

func DeleteRequirement(id uint) error {
	return config.DB.Delete(&models.RecipeRequirement{}, id).Error
}

package services

import (
	"github.com/Ondrysak/GastroTartarus/config"
	"github.com/Ondrysak/GastroTartarus/models"
)

type RecipeInput struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Instructions    string `json:"instructions"`
	PrepTimeMinutes *int   `json:"prep_time_minutes"`
	CookTimeMinutes *int   `json:"cook_time_minutes"`
	Servings        *int   `json:"servings"`
	Difficulty      string `json:"difficulty"`
	Cuisine         string `json:"cuisine"`
}

func CreateRecipe(ownerID uint, in RecipeInput) (*models.Recipe, error) {
	recipe := models.Recipe{
		OwnerID:         ownerID,
		Name:            in.Name,
		Description:     in.Description,
		Instructions:    in.Instructions,
		PrepTimeMinutes: in.PrepTimeMinutes,
		CookTimeMinutes: in.CookTimeMinutes,
		Servings:        in.Servings,
		Difficulty:      in.Difficulty,
		Cuisine:         in.Cuisine,
	}
	if err := config.DB.Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func GetRecipe(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := config.DB.
		Preload("Requirements").
		Preload("Requirements.Ingredient").
		First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListRecipes pages through the owner's recipes, optionally filtering on
// name, description or cuisine (case-insensitive substring).
func ListRecipes(ownerID uint, skip, limit int, search string) ([]models.Recipe, int64, error) {
	q := config.DB.Model(&models.Recipe{}).Where("owner_id = ?", ownerID)
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ? OR cuisine ILIKE ?", pattern, pattern, pattern)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var recipes []models.Recipe
	err := q.Offset(skip).Limit(limit).Find(&recipes).Error
	return recipes, count, err
}

func UpdateRecipe(id uint, in RecipeInput) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := config.DB.First(&recipe, id).Error; err != nil {
		return nil, err
	}

	recipe.Name = in.Name
	recipe.Description = in.Description
	recipe.Instructions = in.Instructions
	recipe.PrepTimeMinutes = in.PrepTimeMinutes
	recipe.CookTimeMinutes = in.CookTimeMinutes
	recipe.Servings = in.Servings
	recipe.Difficulty = in.Difficulty
	recipe.Cuisine = in.Cuisine

	if err := config.DB.Save(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func SetRecipeImageURL(id uint, url string) error {
	return config.DB.Model(&models.Recipe{}).Where("id = ?", id).Update("image_url", url).Error
}

func DeleteRecipe(id uint) error {
	if err := config.DB.Where("recipe_id = ?", id).Delete(&models.RecipeRequirement{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(&models.Recipe{}, id).Error
}

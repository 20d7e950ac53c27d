package services

import (
	"github.com/Ondrysak/GastroTartarus/config"
	"github.com/Ondrysak/GastroTartarus/models"
)

func CreateIngredient(name, category, unit string) (*models.Ingredient, error) {
	if unit == "" {
		unit = "grams"
	}
	ing := models.Ingredient{Name: name, Category: category, Unit: unit}
	if err := config.DB.Create(&ing).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

func GetIngredient(id uint) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := config.DB.First(&ing, id).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

// ListIngredients pages through the catalog, optionally filtering by a
// case-insensitive substring over name and category.
func ListIngredients(skip, limit int, search string) ([]models.Ingredient, int64, error) {
	q := config.DB.Model(&models.Ingredient{})
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("name ILIKE ? OR category ILIKE ?", pattern, pattern)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var ingredients []models.Ingredient
	err := q.Offset(skip).Limit(limit).Find(&ingredients).Error
	return ingredients, count, err
}

// SearchIngredientsByNames matches catalog entries against a list of
// candidate names (used by photo recognition).
func SearchIngredientsByNames(names []string) ([]models.Ingredient, error) {
	if len(names) == 0 {
		return []models.Ingredient{}, nil
	}
	q := config.DB.Model(&models.Ingredient{})
	for i, name := range names {
		if i == 0 {
			q = q.Where("name ILIKE ?", "%"+name+"%")
		} else {
			q = q.Or("name ILIKE ?", "%"+name+"%")
		}
	}
	var ingredients []models.Ingredient
	err := q.Find(&ingredients).Error
	return ingredients, err
}

func UpdateIngredient(id uint, name, category, unit *string) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := config.DB.First(&ing, id).Error; err != nil {
		return nil, err
	}
	if name != nil {
		ing.Name = *name
	}
	if category != nil {
		ing.Category = *category
	}
	if unit != nil {
		ing.Unit = *unit
	}
	if err := config.DB.Save(&ing).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

// DeleteIngredient also clears pantry entries and recipe requirements that
// point at the ingredient.
func DeleteIngredient(id uint) error {
	if err := config.DB.Where("ingredient_id = ?", id).Delete(&models.PantryEntry{}).Error; err != nil {
		return err
	}
	if err := config.DB.Where("ingredient_id = ?", id).Delete(&models.RecipeRequirement{}).Error; err != nil {
		return err
	}
	return config.DB.Delete(&models.Ingredient{}, id).Error
}

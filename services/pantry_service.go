package services

import (
	"time"

	"github.com/Ondrysak/GastroTartarus/config"
	"github.com/Ondrysak/GastroTartarus/models"

	"github.com/shopspring/decimal"
)

func CreatePantryEntry(userID, ingredientID uint, amount decimal.Decimal, expirationDate *time.Time, notes string) (*models.PantryEntry, error) {
	// The ingredient must exist; a dangling reference would silently drop
	// out of every suggestion.
	var ing models.Ingredient
	if err := config.DB.First(&ing, ingredientID).Error; err != nil {
		return nil, err
	}

	entry := models.PantryEntry{
		UserID:         userID,
		IngredientID:   ingredientID,
		Amount:         amount,
		ExpirationDate: expirationDate,
		Notes:          notes,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	entry.Ingredient = ing
	return &entry, nil
}

func GetPantryEntry(id uint) (*models.PantryEntry, error) {
	var entry models.PantryEntry
	if err := config.DB.Preload("Ingredient").First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListPantryEntries pages through a user's pantry. With expiringSoon set,
// only entries whose expiration date falls within daysAhead days are
// returned.
func ListPantryEntries(userID uint, skip, limit int, expiringSoon bool, daysAhead int) ([]models.PantryEntry, int64, error) {
	q := config.DB.Model(&models.PantryEntry{}).Where("user_id = ?", userID)

	if expiringSoon {
		futureDate := time.Now().AddDate(0, 0, daysAhead)
		q = q.Where("expiration_date IS NOT NULL AND expiration_date <= ?", futureDate)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.PantryEntry
	err := q.Preload("Ingredient").Offset(skip).Limit(limit).Find(&entries).Error
	return entries, count, err
}

func UpdatePantryEntry(id uint, ingredientID *uint, amount *decimal.Decimal, expirationDate *time.Time, clearExpiration bool, notes *string) (*models.PantryEntry, error) {
	var entry models.PantryEntry
	if err := config.DB.First(&entry, id).Error; err != nil {
		return nil, err
	}

	if ingredientID != nil {
		var ing models.Ingredient
		if err := config.DB.First(&ing, *ingredientID).Error; err != nil {
			return nil, err
		}
		entry.IngredientID = *ingredientID
	}
	if amount != nil {
		entry.Amount = *amount
	}
	if expirationDate != nil {
		entry.ExpirationDate = expirationDate
	} else if clearExpiration {
		entry.ExpirationDate = nil
	}
	if notes != nil {
		entry.Notes = *notes
	}

	if err := config.DB.Save(&entry).Error; err != nil {
		return nil, err
	}
	return GetPantryEntry(entry.ID)
}

func DeletePantryEntry(id uint) error {
	return config.DB.Delete(&models.PantryEntry{}, id).Error
}

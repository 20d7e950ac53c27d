package services

import (
	"errors"

	"github.com/Ondrysak/GastroTartarus/config"
	"github.com/Ondrysak/GastroTartarus/models"
	"github.com/Ondrysak/GastroTartarus/utils"
)

func GetUserProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserProfile(userID uint, fullName, email string) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	if fullName != "" {
		user.FullName = fullName
	}
	if email != "" {
		user.Email = email
	}
	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserPassword(userID uint, currentPassword, newPassword string) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}
	if !utils.CheckPasswordHash(currentPassword, user.Password) {
		return errors.New("incorrect current password")
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return config.DB.Save(&user).Error
}

func ListUsers(skip, limit int) ([]models.User, int64, error) {
	var users []models.User
	var count int64
	if err := config.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	err := config.DB.Offset(skip).Limit(limit).Find(&users).Error
	return users, count, err
}

// DeleteUser removes the user and, through FK cascades, their pantry
// entries and recipes (with requirements).
func DeleteUser(userID uint) error {
	if err := config.DB.Where("user_id = ?", userID).Delete(&models.PantryEntry{}).Error; err != nil {
		return err
	}
	var recipeIDs []uint
	if err := config.DB.Model(&models.Recipe{}).Where("owner_id = ?", userID).Pluck("id", &recipeIDs).Error; err != nil {
		return err
	}
	if len(recipeIDs) > 0 {
		if err := config.DB.Where("recipe_id IN ?", recipeIDs).Delete(&models.RecipeRequirement{}).Error; err != nil {
			return err
		}
		if err := config.DB.Where("owner_id = ?", userID).Delete(&models.Recipe{}).Error; err != nil {
			return err
		}
	}
	return config.DB.Delete(&models.User{}, userID).Error
}

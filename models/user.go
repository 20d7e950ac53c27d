package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	FullName    string `json:"full_name"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	IsSuperuser bool   `gorm:"default:false" json:"is_superuser"`

	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`

	PantryEntries []PantryEntry `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Recipes       []Recipe      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

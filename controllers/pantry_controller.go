package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Ondrysak/GastroTartarus/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PantryEntryInput struct {
	IngredientID   uint            `json:"ingredient_id" binding:"required"`
	Amount         decimal.Decimal `json:"amount"`
	ExpirationDate *string         `json:"expiration_date"` // YYYY-MM-DD
	Notes          string          `json:"notes" binding:"max=500"`
}

func parseExpiration(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GET /api/pantry?skip=&limit=&expiring_soon=&days_ahead=
func ListPantryEntries(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	skip, limit := paginationParams(c, 100)

	expiringSoon := c.Query("expiring_soon") == "true"
	daysAhead := 7
	if raw := c.Query("days_ahead"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d < 1 || d > 30 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days_ahead must be between 1 and 30"})
			return
		}
		daysAhead = d
	}

	entries, count, err := services.ListPantryEntries(userID, skip, limit, expiringSoon, daysAhead)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries, "count": count})
}

func GetPantryEntry(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := services.GetPantryEntry(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pantry entry not found"})
		return
	}
	if entry.UserID != c.MustGet("userID").(uint) && !c.GetBool("isSuperuser") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func CreatePantryEntry(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input PantryEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Amount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be non-negative"})
		return
	}
	exp, err := parseExpiration(input.ExpirationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expiration_date must be YYYY-MM-DD"})
		return
	}

	entry, err := services.CreatePantryEntry(userID, input.IngredientID, input.Amount, exp, input.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func UpdatePantryEntry(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing, err := services.GetPantryEntry(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pantry entry not found"})
		return
	}
	if existing.UserID != c.MustGet("userID").(uint) && !c.GetBool("isSuperuser") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
		return
	}

	var input struct {
		IngredientID   *uint            `json:"ingredient_id"`
		Amount         *decimal.Decimal `json:"amount"`
		ExpirationDate *string          `json:"expiration_date"`
		Notes          *string          `json:"notes" binding:"omitempty,max=500"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Amount != nil && input.Amount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be non-negative"})
		return
	}

	var exp *time.Time
	clearExp := false
	if input.ExpirationDate != nil {
		if *input.ExpirationDate == "" {
			clearExp = true
		} else {
			exp, err = parseExpiration(input.ExpirationDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "expiration_date must be YYYY-MM-DD"})
				return
			}
		}
	}

	entry, err := services.UpdatePantryEntry(id, input.IngredientID, input.Amount, exp, clearExp, input.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func DeletePantryEntry(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing, err := services.GetPantryEntry(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pantry entry not found"})
		return
	}
	if existing.UserID != c.MustGet("userID").(uint) && !c.GetBool("isSuperuser") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
		return
	}
	if err := services.DeletePantryEntry(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pantry entry deleted successfully"})
}

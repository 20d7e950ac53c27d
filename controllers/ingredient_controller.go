package controllers

import (
	"errors"
	"net/http"

	"github.com/Ondrysak/GastroTartarus/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/ingredients?skip=&limit=&search=
func ListIngredients(c *gin.Context) {
	skip, limit := paginationParams(c, 100)
	ingredients, count, err := services.ListIngredients(skip, limit, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": ingredients, "count": count})
}

func GetIngredient(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ing, err := services.GetIngredient(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}
	c.JSON(http.StatusOK, ing)
}

type IngredientInput struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Category string `json:"category" binding:"max=100"`
	Unit     string `json:"unit" binding:"max=50"`
}

func CreateIngredient(c *gin.Context) {
	var input IngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ing, err := services.CreateIngredient(input.Name, input.Category, input.Unit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ing)
}

func UpdateIngredient(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var input struct {
		Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
		Category *string `json:"category" binding:"omitempty,max=100"`
		Unit     *string `json:"unit" binding:"omitempty,max=50"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ing, err := services.UpdateIngredient(id, input.Name, input.Category, input.Unit)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ing)
}

func DeleteIngredient(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := services.GetIngredient(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}
	if err := services.DeleteIngredient(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ingredient deleted successfully"})
}

// POST /api/ingredients/recognize  { "image_base64": "data:…" }
func RecognizeIngredient(c *gin.Context) {
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	rek, err := services.NewRekognitionService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	labels, err := rek.RecognizeLabels(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ingredients, err := services.SearchIngredientsByNames(labels)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"labels": labels, "data": ingredients, "count": len(ingredients)})
}

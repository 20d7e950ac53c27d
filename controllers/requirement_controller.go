package controllers

import (
	"net/http"
	"strconv"

	"github.com/Ondrysak/GastroTartarus/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// recipeOwnedByCaller checks the authorization rule shared by every
// requirement endpoint: the parent recipe must belong to the caller
// unless they are a superuser.
func recipeOwnedByCaller(c *gin.Context, recipeID uint) bool {
	recipe, err := services.GetRecipe(recipeID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return false
	}
	if recipe.OwnerID != c.MustGet("userID").(uint) && !c.GetBool("isSuperuser") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
		return false
	}
	return true
}

// GET /api/recipe-requirements?recipe_id=&skip=&limit=
func ListRequirements(c *gin.Context) {
	recipeID, err := strconv.ParseUint(c.Query("recipe_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe_id query param required"})
		return
	}
	if !recipeOwnedByCaller(c, uint(recipeID)) {
		return
	}

	skip, limit := paginationParams(c, 100)
	reqs, count, err := services.ListRequirements(uint(recipeID), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reqs, "count": count})
}

func GetRequirement(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req, err := services.GetRequirement(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe requirement not found"})
		return
	}
	if !recipeOwnedByCaller(c, req.RecipeID) {
		return
	}
	c.JSON(http.StatusOK, req)
}

type RequirementInput struct {
	RecipeID     uint            `json:"recipe_id" binding:"required"`
	IngredientID uint            `json:"ingredient_id" binding:"required"`
	Amount       decimal.Decimal `json:"amount"`
	Notes        string          `json:"notes" binding:"max=500"`
}

func CreateRequirement(c *gin.Context) {
	var input RequirementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Amount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be non-negative"})
		return
	}
	if !recipeOwnedByCaller(c, input.RecipeID) {
		return
	}

	req, err := services.CreateRequirement(input.RecipeID, input.IngredientID, input.Amount, input.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, req)
}

func UpdateRequirement(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing, err := services.GetRequirement(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe requirement not found"})
		return
	}
	if !recipeOwnedByCaller(c, existing.RecipeID) {
		return
	}

	var input struct {
		IngredientID *uint            `json:"ingredient_id"`
		Amount       *decimal.Decimal `json:"amount"`
		Notes        *string          `json:"notes" binding:"omitempty,max=500"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Amount != nil && input.Amount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be non-negative"})
		return
	}

	req, err := services.UpdateRequirement(id, input.IngredientID, input.Amount, input.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, req)
}

func DeleteRequirement(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing, err := services.GetRequirement(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe requirement not found"})
		return
	}
	if !recipeOwnedByCaller(c, existing.RecipeID) {
		return
	}
	if err := services.DeleteRequirement(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe requirement deleted successfully"})
}

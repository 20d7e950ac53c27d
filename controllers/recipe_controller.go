package controllers

import (
	"fmt"
	"net/http"

	"github.com/Ondrysak/GastroTartarus/config"
	"github.com/Ondrysak/GastroTartarus/services"
	"github.com/Ondrysak/GastroTartarus/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/recipes?skip=&limit=&search=
func ListRecipes(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	skip, limit := paginationParams(c, 100)

	recipes, count, err := services.ListRecipes(userID, skip, limit, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": recipes, "count": count})
}

// GET /api/recipes/suggestions?limit=&min_match_score=&reference_date=
//
// The suggestion engine ranks the caller's recipes by how many of their
// required ingredients are currently (non-expired) in the pantry.
func GetRecipeSuggestions(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	q, err := parseSuggestionQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewSuggestionService(services.NewGormSuggestionRepo(config.DB))
	suggestions, count, err := svc.GetRecipeSuggestions(
		c.Request.Context(), userID, q.Limit, q.MinMatchScore, q.ReferenceDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": suggestions, "count": count})
}

func GetRecipe(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recipe, err := services.GetRecipe(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if recipe.OwnerID != c.MustGet("userID").(uint) && !c.GetBool("isSuperuser") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func CreateRecipe(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input services.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := services.CreateRecipe(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func UpdateRecipe(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing, err := services.GetRecipe(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if existing.OwnerID != c.MustGet("userID").(uint) && !c.GetBool("isSuperuser") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
		return
	}

	var input services.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := services.UpdateRecipe(id, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func DeleteRecipe(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing, err := services.GetRecipe(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if existing.OwnerID != c.MustGet("userID").(uint) && !c.GetBool("isSuperuser") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
		return
	}
	if err := services.DeleteRecipe(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}

// POST /api/recipes/:id/image  { "image_base64": "data:…" }
func UploadRecipeImage(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	existing, err := services.GetRecipe(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}
	if existing.OwnerID != c.MustGet("userID").(uint) && !c.GetBool("isSuperuser") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
		return
	}

	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, fmt.Sprintf("recipe-%d", id))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if err := services.SetRecipeImageURL(id, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"image_url": url})
}

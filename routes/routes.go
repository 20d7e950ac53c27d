package routes

import (
	"github.com/Ondrysak/GastroTartarus/controllers"
	"github.com/Ondrysak/GastroTartarus/middlewares"
	"github.com/Ondrysak/GastroTartarus/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub, push *services.PushService) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())

	users := api.Group("/users")
	{
		users.GET("/me", controllers.GetMe)
		users.PUT("/me", controllers.UpdateMe)
		users.PUT("/me/password", controllers.UpdateMyPassword)

		admin := users.Group("")
		admin.Use(middlewares.RequireSuperuser())
		{
			admin.GET("", controllers.ListUsers)
			admin.DELETE("/:id", controllers.DeleteUser)
		}
	}

	ingredients := api.Group("/ingredients")
	{
		ingredients.GET("", controllers.ListIngredients)
		ingredients.POST("", controllers.CreateIngredient)
		ingredients.POST("/recognize", controllers.RecognizeIngredient)
		ingredients.GET("/:id", controllers.GetIngredient)
		ingredients.PUT("/:id", controllers.UpdateIngredient)
		ingredients.DELETE("/:id", controllers.DeleteIngredient)
	}

	pantry := api.Group("/pantry")
	{
		pantry.GET("", controllers.ListPantryEntries)
		pantry.POST("", controllers.CreatePantryEntry)
		pantry.GET("/:id", controllers.GetPantryEntry)
		pantry.PUT("/:id", controllers.UpdatePantryEntry)
		pantry.DELETE("/:id", controllers.DeletePantryEntry)
	}

	recipes := api.Group("/recipes")
	{
		recipes.GET("", controllers.ListRecipes)
		recipes.POST("", controllers.CreateRecipe)
		// registered before /:id so "suggestions" is not parsed as an id
		recipes.GET("/suggestions", controllers.GetRecipeSuggestions)
		recipes.GET("/:id", controllers.GetRecipe)
		recipes.PUT("/:id", controllers.UpdateRecipe)
		recipes.DELETE("/:id", controllers.DeleteRecipe)
		recipes.POST("/:id/image", controllers.UploadRecipeImage)
	}

	requirements := api.Group("/recipe-requirements")
	{
		requirements.GET("", controllers.ListRequirements)
		requirements.POST("", controllers.CreateRequirement)
		requirements.GET("/:id", controllers.GetRequirement)
		requirements.PUT("/:id", controllers.UpdateRequirement)
		requirements.DELETE("/:id", controllers.DeleteRequirement)
	}

	if push != nil {
		dc := controllers.NewDeviceController(push)
		api.POST("/devices", dc.Register)
	}
	api.GET("/alerts", controllers.ListAlerts)

	rc := controllers.NewRealtimeController(hub)
	api.GET("/ws/alerts", rc.AlertsWS)

	return r
}

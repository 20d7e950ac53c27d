package models

// RecipeSuggestion is the suggestion engine's output. It is computed per
// request and never persisted.
type RecipeSuggestion struct {
	Recipe               Recipe              `json:"recipe"`
	MatchScore           float64             `json:"match_score"`
	AvailableIngredients []RecipeRequirement `json:"available_ingredients"`
	MissingIngredients   []RecipeRequirement `json:"missing_ingredients"`
	TotalIngredients     int                 `json:"total_ingredients"`
	AvailableCount       int                 `json:"available_count"`
}

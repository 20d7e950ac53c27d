package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Ondrysak/GastroTartarus/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSuggestionRepo struct {
	entries    []models.PantryEntry
	recipes    []models.Recipe
	pantryErr  error
	recipesErr error
}

func (f *fakeSuggestionRepo) ListPantryEntries(_ context.Context, _ uint) ([]models.PantryEntry, error) {
	return f.entries, f.pantryErr
}

func (f *fakeSuggestionRepo) ListRecipesWithRequirements(_ context.Context, _ uint) ([]models.Recipe, error) {
	return f.recipes, f.recipesErr
}

func datePtr(t time.Time) *time.Time { return &t }

func entry(ingredientID uint, exp *time.Time) models.PantryEntry {
	return models.PantryEntry{IngredientID: ingredientID, ExpirationDate: exp}
}

func recipe(id uint, name string, ingredientIDs ...uint) models.Recipe {
	r := models.Recipe{Model: gorm.Model{ID: id}, Name: name}
	for i, ingID := range ingredientIDs {
		r.Requirements = append(r.Requirements, models.RecipeRequirement{
			Model:        gorm.Model{ID: id*100 + uint(i)},
			RecipeID:     id,
			IngredientID: ingID,
		})
	}
	return r
}

var refDate = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

func TestResolveAvailable(t *testing.T) {
	yesterday := refDate.AddDate(0, 0, -1)
	tomorrow := refDate.AddDate(0, 0, 1)

	t.Run("empty pantry yields empty set", func(t *testing.T) {
		assert.Empty(t, ResolveAvailable(nil, refDate))
	})

	t.Run("no expiration counts as available", func(t *testing.T) {
		got := ResolveAvailable([]models.PantryEntry{entry(1, nil)}, refDate)
		assert.Contains(t, got, uint(1))
	})

	t.Run("expired lot is excluded", func(t *testing.T) {
		got := ResolveAvailable([]models.PantryEntry{entry(1, datePtr(yesterday))}, refDate)
		assert.NotContains(t, got, uint(1))
	})

	t.Run("expiring today is still available", func(t *testing.T) {
		got := ResolveAvailable([]models.PantryEntry{entry(1, datePtr(refDate))}, refDate)
		assert.Contains(t, got, uint(1))
	})

	t.Run("expiry is compared at date precision", func(t *testing.T) {
		// reference passed mid-day must not expire a same-day lot
		noonRef := refDate.Add(12 * time.Hour)
		got := ResolveAvailable([]models.PantryEntry{entry(1, datePtr(refDate))}, noonRef)
		assert.Contains(t, got, uint(1))
	})

	t.Run("one fresh lot rescues a duplicate expired lot", func(t *testing.T) {
		got := ResolveAvailable([]models.PantryEntry{
			entry(1, datePtr(yesterday)),
			entry(1, datePtr(tomorrow)),
		}, refDate)
		assert.Contains(t, got, uint(1))
		assert.Len(t, got, 1)
	})
}

func TestEvaluateRecipe(t *testing.T) {
	t.Run("no requirements produces no suggestion", func(t *testing.T) {
		_, ok := EvaluateRecipe(recipe(1, "empty"), map[uint]struct{}{1: {}})
		assert.False(t, ok)
	})

	t.Run("partitions requirements and scores", func(t *testing.T) {
		// pantry: flour fresh, egg expired upstream → available = {flour}
		flour, egg := uint(10), uint(20)
		r := recipe(1, "pancakes", flour, egg)

		sug, ok := EvaluateRecipe(r, map[uint]struct{}{flour: {}})
		require.True(t, ok)

		assert.Equal(t, 0.5, sug.MatchScore)
		assert.Equal(t, 2, sug.TotalIngredients)
		assert.Equal(t, 1, sug.AvailableCount)
		require.Len(t, sug.AvailableIngredients, 1)
		assert.Equal(t, flour, sug.AvailableIngredients[0].IngredientID)
		require.Len(t, sug.MissingIngredients, 1)
		assert.Equal(t, egg, sug.MissingIngredients[0].IngredientID)
	})

	t.Run("score bounds and identity", func(t *testing.T) {
		cases := []struct {
			name      string
			available map[uint]struct{}
			want      float64
		}{
			{"nothing available", map[uint]struct{}{}, 0},
			{"everything available", map[uint]struct{}{1: {}, 2: {}, 3: {}}, 1},
			{"one of three", map[uint]struct{}{2: {}}, 1.0 / 3.0},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				sug, ok := EvaluateRecipe(recipe(1, "r", 1, 2, 3), tc.available)
				require.True(t, ok)
				assert.InDelta(t, tc.want, sug.MatchScore, 1e-9)
				assert.GreaterOrEqual(t, sug.MatchScore, 0.0)
				assert.LessOrEqual(t, sug.MatchScore, 1.0)
				assert.Equal(t, float64(sug.AvailableCount)/float64(sug.TotalIngredients), sug.MatchScore)
			})
		}
	})
}

func suggestion(recipeID uint, score float64, availableCount int) models.RecipeSuggestion {
	return models.RecipeSuggestion{
		Recipe:         models.Recipe{Model: gorm.Model{ID: recipeID}},
		MatchScore:     score,
		AvailableCount: availableCount,
	}
}

func TestRankSuggestions(t *testing.T) {
	t.Run("threshold is inclusive", func(t *testing.T) {
		got := RankSuggestions([]models.RecipeSuggestion{
			suggestion(1, 0.3, 1),
			suggestion(2, 0.29, 1),
		}, 0.3, 10)
		require.Len(t, got, 1)
		assert.Equal(t, uint(1), got[0].Recipe.ID)
	})

	t.Run("orders by score then available count then recipe id", func(t *testing.T) {
		got := RankSuggestions([]models.RecipeSuggestion{
			suggestion(5, 1.0, 3),
			suggestion(3, 1.0, 3),
			suggestion(1, 0.5, 2),
			suggestion(2, 1.0, 4),
			suggestion(4, 0.5, 1),
		}, 0, 10)

		ids := make([]uint, 0, len(got))
		for _, s := range got {
			ids = append(ids, s.Recipe.ID)
		}
		// score desc; 1.0 group ordered by available count desc, then id asc
		assert.Equal(t, []uint{2, 3, 5, 1, 4}, ids)
	})

	t.Run("sorted non-increasing by sort key", func(t *testing.T) {
		got := RankSuggestions([]models.RecipeSuggestion{
			suggestion(1, 0.2, 1), suggestion(2, 0.9, 3), suggestion(3, 0.9, 2),
			suggestion(4, 0.5, 1), suggestion(5, 1.0, 4),
		}, 0, 10)
		for i := 1; i < len(got); i++ {
			if got[i-1].MatchScore == got[i].MatchScore {
				assert.GreaterOrEqual(t, got[i-1].AvailableCount, got[i].AvailableCount)
			} else {
				assert.Greater(t, got[i-1].MatchScore, got[i].MatchScore)
			}
		}
	})

	t.Run("truncates to limit", func(t *testing.T) {
		in := []models.RecipeSuggestion{
			suggestion(1, 0.9, 3), suggestion(2, 0.8, 2), suggestion(3, 0.7, 2),
			suggestion(4, 0.6, 1), suggestion(5, 0.5, 1),
		}
		got := RankSuggestions(in, 0, 2)
		require.Len(t, got, 2)
		assert.Equal(t, uint(1), got[0].Recipe.ID)
		assert.Equal(t, uint(2), got[1].Recipe.ID)
	})

	t.Run("fewer than limit returns all", func(t *testing.T) {
		got := RankSuggestions([]models.RecipeSuggestion{suggestion(1, 0.9, 1)}, 0, 10)
		assert.Len(t, got, 1)
	})
}

func TestGetRecipeSuggestions(t *testing.T) {
	flour, egg, milk := uint(10), uint(20), uint(30)
	yesterday := refDate.AddDate(0, 0, -1)

	repo := &fakeSuggestionRepo{
		entries: []models.PantryEntry{
			entry(flour, nil),
			entry(egg, datePtr(yesterday)),
			entry(milk, datePtr(refDate.AddDate(0, 0, 3))),
		},
		recipes: []models.Recipe{
			recipe(1, "pancakes", flour, egg),    // 0.5
			recipe(2, "porridge", flour, milk),   // 1.0
			recipe(3, "omelette", egg),           // 0.0
			recipe(4, "thought experiment"),      // no requirements
			recipe(5, "milk toast", flour, milk), // 1.0, tie with 2
		},
	}
	svc := NewSuggestionService(repo)

	t.Run("ranks, filters and counts", func(t *testing.T) {
		got, count, err := svc.GetRecipeSuggestions(context.Background(), 1, 10, 0.3, refDate)
		require.NoError(t, err)
		assert.Equal(t, len(got), count)

		require.Len(t, got, 3) // omelette below threshold, empty recipe excluded
		assert.Equal(t, uint(2), got[0].Recipe.ID)
		assert.Equal(t, uint(5), got[1].Recipe.ID) // tie broken by recipe id
		assert.Equal(t, uint(1), got[2].Recipe.ID)
	})

	t.Run("empty-requirement recipes are excluded even at zero threshold", func(t *testing.T) {
		got, _, err := svc.GetRecipeSuggestions(context.Background(), 1, 10, 0, refDate)
		require.NoError(t, err)
		for _, s := range got {
			assert.NotEqual(t, uint(4), s.Recipe.ID)
			assert.Greater(t, s.TotalIngredients, 0)
		}
	})

	t.Run("every suggestion satisfies the threshold", func(t *testing.T) {
		got, _, err := svc.GetRecipeSuggestions(context.Background(), 1, 10, 0.5, refDate)
		require.NoError(t, err)
		for _, s := range got {
			assert.GreaterOrEqual(t, s.MatchScore, 0.5)
		}
	})

	t.Run("limit bounds the output", func(t *testing.T) {
		got, count, err := svc.GetRecipeSuggestions(context.Background(), 1, 2, 0, refDate)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, 2, count)
	})

	t.Run("idempotent for identical inputs", func(t *testing.T) {
		first, _, err := svc.GetRecipeSuggestions(context.Background(), 1, 10, 0, refDate)
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			again, _, err := svc.GetRecipeSuggestions(context.Background(), 1, 10, 0, refDate)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("repository failures propagate", func(t *testing.T) {
		boom := errors.New("db down")
		svc := NewSuggestionService(&fakeSuggestionRepo{pantryErr: boom})
		_, _, err := svc.GetRecipeSuggestions(context.Background(), 1, 10, 0, refDate)
		assert.ErrorIs(t, err, boom)

		svc = NewSuggestionService(&fakeSuggestionRepo{recipesErr: boom})
		_, _, err = svc.GetRecipeSuggestions(context.Background(), 1, 10, 0, refDate)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("suggestion carries the full requirement list", func(t *testing.T) {
		got, _, err := svc.GetRecipeSuggestions(context.Background(), 1, 10, 0.3, refDate)
		require.NoError(t, err)
		for _, s := range got {
			assert.Len(t, s.Recipe.Requirements, s.TotalIngredients)
			assert.Len(t, s.AvailableIngredients, s.AvailableCount)
			assert.Len(t, s.MissingIngredients, s.TotalIngredients-s.AvailableCount)
		}
	})
}

func TestGetRecipeSuggestionsLargeCatalog(t *testing.T) {
	// Exercises the parallel evaluation path with enough recipes that
	// goroutine scheduling would surface any ordering instability.
	repo := &fakeSuggestionRepo{
		entries: []models.PantryEntry{entry(1, nil), entry(2, nil)},
	}
	for i := uint(1); i <= 200; i++ {
		ings := []uint{1, 2}
		if i%2 == 0 {
			ings = []uint{1, 3} // half the recipes miss ingredient 3
		}
		repo.recipes = append(repo.recipes, recipe(i, "r", ings...))
	}
	svc := NewSuggestionService(repo)

	first, count, err := svc.GetRecipeSuggestions(context.Background(), 1, 50, 0, refDate)
	require.NoError(t, err)
	assert.Equal(t, 50, count)

	// full-match recipes (odd ids) come first, ascending within the tie
	assert.Equal(t, 1.0, first[0].MatchScore)
	assert.Equal(t, uint(1), first[0].Recipe.ID)
	assert.Equal(t, uint(3), first[1].Recipe.ID)

	for i := 0; i < 5; i++ {
		again, _, err := svc.GetRecipeSuggestions(context.Background(), 1, 50, 0, refDate)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

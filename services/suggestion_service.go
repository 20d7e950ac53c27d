package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Ondrysak/GastroTartarus/models"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// SuggestionRepo supplies the snapshots the engine works on. The engine
// itself never queries during evaluation.
type SuggestionRepo interface {
	ListPantryEntries(ctx context.Context, userID uint) ([]models.PantryEntry, error)
	ListRecipesWithRequirements(ctx context.Context, ownerID uint) ([]models.Recipe, error)
}

type SuggestionService struct {
	repo SuggestionRepo
}

func NewSuggestionService(repo SuggestionRepo) *SuggestionService {
	return &SuggestionService{repo: repo}
}

type gormSuggestionRepo struct {
	db *gorm.DB
}

func NewGormSuggestionRepo(db *gorm.DB) SuggestionRepo {
	return &gormSuggestionRepo{db: db}
}

func (r *gormSuggestionRepo) ListPantryEntries(ctx context.Context, userID uint) ([]models.PantryEntry, error) {
	var entries []models.PantryEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&entries).Error
	return entries, err
}

func (r *gormSuggestionRepo) ListRecipesWithRequirements(ctx context.Context, ownerID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := r.db.WithContext(ctx).
		Preload("Requirements").
		Preload("Requirements.Ingredient").
		Where("owner_id = ?", ownerID).
		Find(&recipes).Error
	return recipes, err
}

// dateOnly truncates a timestamp to midnight so expiry comparisons work at
// date precision regardless of the time of day on either side.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ResolveAvailable turns raw pantry entries into the set of ingredient IDs
// currently usable. An entry counts if it has no expiration date or its
// expiration date is on or after referenceDate; duplicate lots of the same
// ingredient collapse to one membership.
func ResolveAvailable(entries []models.PantryEntry, referenceDate time.Time) map[uint]struct{} {
	ref := dateOnly(referenceDate)
	available := make(map[uint]struct{}, len(entries))
	for _, e := range entries {
		if e.ExpirationDate != nil && dateOnly(*e.ExpirationDate).Before(ref) {
			continue
		}
		available[e.IngredientID] = struct{}{}
	}
	return available
}

// EvaluateRecipe partitions a recipe's requirements into available and
// missing against the availability set and computes the match score
// available/total. Recipes with no requirements produce no suggestion at
// all; the second return is false for them.
func EvaluateRecipe(recipe models.Recipe, available map[uint]struct{}) (models.RecipeSuggestion, bool) {
	total := len(recipe.Requirements)
	if total == 0 {
		return models.RecipeSuggestion{}, false
	}

	availableReqs := make([]models.RecipeRequirement, 0, total)
	missingReqs := make([]models.RecipeRequirement, 0)
	for _, req := range recipe.Requirements {
		if _, ok := available[req.IngredientID]; ok {
			availableReqs = append(availableReqs, req)
		} else {
			missingReqs = append(missingReqs, req)
		}
	}

	return models.RecipeSuggestion{
		Recipe:               recipe,
		MatchScore:           float64(len(availableReqs)) / float64(total),
		AvailableIngredients: availableReqs,
		MissingIngredients:   missingReqs,
		TotalIngredients:     total,
		AvailableCount:       len(availableReqs),
	}, true
}

// RankSuggestions keeps suggestions whose score is at least minScore
// (inclusive), orders them by match score descending, then available
// count descending, then recipe ID ascending so equal-scoring recipes
// come back in the same order on every run, and truncates to limit.
func RankSuggestions(suggestions []models.RecipeSuggestion, minScore float64, limit int) []models.RecipeSuggestion {
	ranked := make([]models.RecipeSuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		if s.MatchScore >= minScore {
			ranked = append(ranked, s)
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].MatchScore != ranked[j].MatchScore {
			return ranked[i].MatchScore > ranked[j].MatchScore
		}
		if ranked[i].AvailableCount != ranked[j].AvailableCount {
			return ranked[i].AvailableCount > ranked[j].AvailableCount
		}
		return ranked[i].Recipe.ID < ranked[j].Recipe.ID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// GetRecipeSuggestions fetches the user's pantry and recipe catalog,
// resolves ingredient availability as of referenceDate, evaluates every
// recipe, and returns the ranked suggestions with their count.
func (s *SuggestionService) GetRecipeSuggestions(
	ctx context.Context,
	userID uint,
	limit int,
	minScore float64,
	referenceDate time.Time,
) ([]models.RecipeSuggestion, int, error) {
	var (
		entries []models.PantryEntry
		recipes []models.Recipe
	)

	// Pantry and catalog fetches are independent.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entries, err = s.repo.ListPantryEntries(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		recipes, err = s.repo.ListRecipesWithRequirements(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	available := ResolveAvailable(entries, referenceDate)

	// Recipes share only the read-only availability set, so evaluation
	// fans out per recipe. Results land in index-addressed slots; nothing
	// reorders before the ranker.
	slots := make([]*models.RecipeSuggestion, len(recipes))
	var wg sync.WaitGroup
	for i := range recipes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if sug, ok := EvaluateRecipe(recipes[i], available); ok {
				slots[i] = &sug
			}
		}(i)
	}
	wg.Wait()

	evaluated := make([]models.RecipeSuggestion, 0, len(recipes))
	for _, slot := range slots {
		if slot != nil {
			evaluated = append(evaluated, *slot)
		}
	}

	ranked := RankSuggestions(evaluated, minScore, limit)
	return ranked, len(ranked), nil
}

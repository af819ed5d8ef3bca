package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/model"
)

const (
	// DefaultRecipeCount is the number of ranked recipes returned per run.
	DefaultRecipeCount = 20

	// searchCandidateCount over-requests candidates so the incomplete ones
	// can be filtered out without starving the ranking stage.
	searchCandidateCount = 30

	nutritionCacheTTL = 24 * time.Hour
	catalogTimeout    = 15 * time.Second
)

// catalogDiets maps user-facing dietary preferences to the catalog's diet
// parameter values.
var catalogDiets = map[string]string{
	"vegetarian": "vegetarian",
	"vegan":      "vegan",
	"keto":       "ketogenic",
	"paleo":      "paleolithic",
	"glutenFree": "gluten free",
}

// RecipeService acquires nutritionally verified recipes for plan
// generation. It degrades in stages (catalog search, per-recipe nutrition
// enrichment, curated fallback) and never surfaces an error: the caller
// always gets a usable, protein-ranked recipe list.
type RecipeService struct {
	catalog RecipeCatalogInterface
	redis   *redis.Client
}

// NewRecipeService creates a new RecipeService instance. redisClient may be
// nil, which disables the nutrition cache.
func NewRecipeService(catalog RecipeCatalogInterface, redisClient *redis.Client) *RecipeService {
	return &RecipeService{
		catalog: catalog,
		redis:   redisClient,
	}
}

// GetRecipes returns up to number recipes for the given dietary
// preference, sorted by protein descending. Any failure along the way
// falls back to the curated dataset for that diet.
func (s *RecipeService) GetRecipes(ctx context.Context, diet string, intolerances []string, maxCalories, number int) []model.Recipe {
	if number <= 0 {
		number = DefaultRecipeCount
	}

	recipes, err := s.retrieve(ctx, diet, intolerances, maxCalories, number)
	if err != nil {
		log.Printf("recipe retrieval failed, serving fallback dataset: %v", err)
		return FallbackRecipes(diet)
	}
	return recipes
}

func (s *RecipeService) retrieve(ctx context.Context, diet string, intolerances []string, maxCalories, number int) ([]model.Recipe, error) {
	searchCtx, cancel := context.WithTimeout(ctx, catalogTimeout)
	defer cancel()

	candidates, err := s.catalog.SearchRecipes(searchCtx, RecipeSearchFilters{
		Diet:         catalogDiets[diet],
		Intolerances: intolerances,
		MaxCalories:  maxCalories,
		Number:       searchCandidateCount,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog search: %w", err)
	}
	if len(candidates) == 0 {
		return FallbackRecipes(diet), nil
	}

	enriched := make([]model.Recipe, 0, len(candidates))
	for _, candidate := range candidates {
		totals, err := s.nutritionFor(ctx, candidate)
		if errors.Is(err, ErrQuotaExceeded) {
			// Quota gone: keep what we have rather than burning more calls.
			log.Printf("catalog quota exhausted after %d of %d recipes", len(enriched), len(candidates))
			break
		}
		if err != nil {
			log.Printf("skipping recipe %q, nutrition fetch failed: %v", candidate.Title, err)
			continue
		}
		if !totals.Complete() {
			continue
		}
		enriched = append(enriched, model.Recipe{Title: candidate.Title, Nutrients: totals})
	}

	if len(enriched) == 0 {
		return fallbackFor(diet, "vegetarian"), nil
	}

	// Stable sort keeps catalog order for equal-protein recipes.
	sort.SliceStable(enriched, func(i, j int) bool {
		return enriched[i].Nutrients.Protein > enriched[j].Nutrients.Protein
	})

	if len(enriched) > number {
		enriched = enriched[:number]
	}
	return enriched, nil
}

// nutritionFor fetches a candidate's macro breakdown, going through the
// Redis cache when available so repeat runs spend no catalog quota.
func (s *RecipeService) nutritionFor(ctx context.Context, candidate RecipeCandidate) (model.NutrientTotals, error) {
	key := fmt.Sprintf("nutrition:recipe:%d", candidate.ID)

	if s.redis != nil {
		if data, err := s.redis.Get(ctx, key).Bytes(); err == nil {
			var totals model.NutrientTotals
			if json.Unmarshal(data, &totals) == nil {
				return totals, nil
			}
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, catalogTimeout)
	defer cancel()

	totals, err := s.catalog.FetchNutrition(fetchCtx, candidate.ID)
	if err != nil {
		return model.NutrientTotals{}, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(totals); err == nil {
			if err := s.redis.Set(ctx, key, data, nutritionCacheTTL).Err(); err != nil {
				log.Printf("failed to cache nutrition for recipe %d: %v", candidate.ID, err)
			}
		}
	}
	return totals, nil
}

package service

import (
	"context"

	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/model"
)

// EmbeddingServiceInterface converts text into a fixed-dimension vector.
type EmbeddingServiceInterface interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// KnowledgeStoreInterface is the vector index over the nutrition
// knowledge base.
type KnowledgeStoreInterface interface {
	Search(ctx context.Context, embedding []float32, topK int) ([]model.KnowledgeSnippet, error)
}

// RecipeCatalogInterface is the external recipe catalog. FetchNutrition
// returns ErrQuotaExceeded when the catalog's rate limit is hit.
type RecipeCatalogInterface interface {
	SearchRecipes(ctx context.Context, filters RecipeSearchFilters) ([]RecipeCandidate, error)
	FetchNutrition(ctx context.Context, id int64) (model.NutrientTotals, error)
}

// GeneratorInterface is the text-generation service.
type GeneratorInterface interface {
	Generate(ctx context.Context, prompt string, cfg GenerationConfig) (string, error)
}

// KnowledgeRetrieverInterface returns research snippets for a goal/diet
// context. Implementations degrade to an empty slice on failure.
type KnowledgeRetrieverInterface interface {
	RetrieveSnippets(ctx context.Context, goal, diet string, allergies []string, topK int) []model.KnowledgeSnippet
}

// RecipeProviderInterface returns ranked recipes for a diet. Implementations
// fall back to the curated dataset on failure.
type RecipeProviderInterface interface {
	GetRecipes(ctx context.Context, diet string, intolerances []string, maxCalories, number int) []model.Recipe
}

// NutritionPlannerInterface is the single entry point of the plan pipeline.
type NutritionPlannerInterface interface {
	GeneratePlan(ctx context.Context, profile *model.UserProfile) (*model.PlanResult, error)
}

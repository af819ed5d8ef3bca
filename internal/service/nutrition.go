package service

import (
	"context"
	"sync"

	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/model"
)

// NutritionPlanService orchestrates the plan-generation pipeline:
// validate, compute targets, gather knowledge and recipes concurrently,
// assemble the prompt, generate. Only ValidationError and GenerationError
// cross this boundary; retrieval failures degrade inside their services.
type NutritionPlanService struct {
	knowledge KnowledgeRetrieverInterface
	recipes   RecipeProviderInterface
	generator GeneratorInterface
}

// NewNutritionPlanService creates a new NutritionPlanService instance.
func NewNutritionPlanService(knowledge KnowledgeRetrieverInterface, recipes RecipeProviderInterface, generator GeneratorInterface) *NutritionPlanService {
	return &NutritionPlanService{
		knowledge: knowledge,
		recipes:   recipes,
		generator: generator,
	}
}

// GeneratePlan runs the full pipeline for one user profile. On success the
// result carries both the generated plan and the complete targets; on
// failure neither is returned.
func (s *NutritionPlanService) GeneratePlan(ctx context.Context, profile *model.UserProfile) (*model.PlanResult, error) {
	targets, err := CalculateNutritionTargets(profile)
	if err != nil {
		return nil, err
	}

	// Knowledge and recipe retrieval are independent; run them in
	// parallel and join before assembly. Each degrades internally and
	// cannot fail the run.
	var (
		wg       sync.WaitGroup
		snippets []model.KnowledgeSnippet
		recipes  []model.Recipe
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		snippets = s.knowledge.RetrieveSnippets(ctx, profile.Goal, profile.DietaryPreferences, profile.Allergies, DefaultTopK)
	}()
	go func() {
		defer wg.Done()
		recipes = s.recipes.GetRecipes(ctx, profile.DietaryPreferences, profile.Allergies, targets.TargetCalories, DefaultRecipeCount)
	}()
	wg.Wait()

	prompt := BuildPlanPrompt(profile, targets, snippets, recipes)

	plan, err := s.generator.Generate(ctx, prompt, DefaultGenerationConfig)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	return &model.PlanResult{
		Plan:    plan,
		Targets: *targets,
	}, nil
}

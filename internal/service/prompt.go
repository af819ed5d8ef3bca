package service

import (
	"fmt"
	"strings"

	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/model"
)

const (
	// maxPromptSnippets caps the research section of the prompt.
	maxPromptSnippets = 3
	// maxPromptRecipes caps the recipe section of the prompt.
	maxPromptRecipes = 15
)

// BuildPlanPrompt assembles the full generation prompt from the computed
// targets, the retrieved research snippets and the ranked recipes. Pure
// formatting: it tolerates empty snippet and recipe lists.
func BuildPlanPrompt(profile *model.UserProfile, targets *model.NutritionTargets, snippets []model.KnowledgeSnippet, recipes []model.Recipe) string {
	if len(snippets) > maxPromptSnippets {
		snippets = snippets[:maxPromptSnippets]
	}
	if len(recipes) > maxPromptRecipes {
		recipes = recipes[:maxPromptRecipes]
	}

	var research strings.Builder
	research.WriteString("**RESEARCH-BACKED NUTRITION KNOWLEDGE:**\n")
	for i, snippet := range snippets {
		fmt.Fprintf(&research, "\n%d. %s\n%s\n", i+1, snippet.Title, snippet.Content)
	}

	var recipeSection strings.Builder
	recipeSection.WriteString("**REAL RECIPES AVAILABLE:**\n")
	for i, recipe := range recipes {
		fmt.Fprintf(&recipeSection, "\n%d. %s\n", i+1, recipe.Title)
		fmt.Fprintf(&recipeSection, "   - Calories: ~%.0f kcal | Protein: ~%.0fg | Carbs: ~%.0fg | Fats: ~%.0fg\n",
			recipe.Nutrients.Calories, recipe.Nutrients.Protein, recipe.Nutrients.Carbs, recipe.Nutrients.Fat)
	}

	goalPhrase := goalPhraseFor(profile.Goal)

	dietaryDisplay := profile.DietaryPreferences
	if dietaryDisplay == "" || dietaryDisplay == "none" {
		dietaryDisplay = "No restrictions"
	}

	var goalWeightLine string
	if profile.GoalWeightLbs > 0 {
		goalWeightLine = fmt.Sprintf("Goal: Aim to reach %.0f lbs", profile.GoalWeightLbs)
	}

	var allergiesLine string
	if len(profile.Allergies) > 0 {
		allergiesLine = "Allergies/Intolerances: " + strings.Join(profile.Allergies, ", ")
	}

	mealsPerDay := profile.MealsPerDay
	if mealsPerDay == 0 {
		mealsPerDay = model.DefaultMealsPerDay
	}
	var snackPlaceholder string
	if mealsPerDay > 3 {
		snackPlaceholder = "\n- Snack: [Your choice of healthy snack]"
	}

	return fmt.Sprintf(`You are a certified nutritionist and dietitian. Generate the response using **proper Markdown formatting** for headings, bold text, and lists.

Using the information provided, create a personalized daily nutrition plan.
%s
%s

User Details:
- Age: %d
- Gender: %s
- Weight: %.0f lbs
- Height: %.0f inches
- %s
- Activity Level: %s
- Goal: %s
- Dietary Preferences: %s
- %s
- Target Daily Calories: ~%d kcal
- Meals Per Day: %d

Macronutrient Breakdown:
- Protein: ~%dg
- Carbohydrates: ~%dg
- Fats: ~%dg

**Instructions:**
1. Create a daily meal plan with breakfast, lunch, dinner, and%s.
2. Each meal should include a recipe from the provided recipes list.
3. Ensure the total daily calories align with the target of ~%d kcal.
4. Distribute macronutrients according to the calculated grams.
5. Provide portion sizes for each meal.
6. Use a friendly and encouraging tone suitable for someone looking to %s.
7. Format the meal plan clearly for easy reading.
8. Cite the sources of recipes used from the provided list.

Generate the personalized nutrition plan now.

**Format**
# Your Personalized Nutrition Plan

## Summary
[Brief overview based on research]

## Daily Targets
- Calories: %d kcal
- Macros: %dg | Carbs: %dg | Fats: %dg

## 7-Day Meal Plan

### Day 1
**Breakfast:** [Meal name]
- [Description]
- Calories: ~XXX | Protein: XXg | Carbs: XXg | Fats: XXg

**Lunch:** [Meal name]
- [Description]
- Calories: ~XXX | Protein: XXg | Carbs: XXg | Fats: XXg

**Dinner:** [Meal name]
- [Description]
- Calories: ~XXX | Protein: XXg | Carbs: XXg | Fats: XXg

%s**Daily Total:** ~%d kcal

[Repeat for Days 2-7]

## Tips for Success
[5 practical tips based on research]

Keep it concise, practical, and encouraging!
`,
		research.String(),
		recipeSection.String(),
		profile.Age,
		profile.Gender,
		profile.WeightLbs,
		profile.HeightIn,
		goalWeightLine,
		profile.ActivityLevel,
		goalPhrase,
		dietaryDisplay,
		allergiesLine,
		targets.TargetCalories,
		mealsPerDay,
		targets.ProteinGrams,
		targets.CarbsGrams,
		targets.FatsGrams,
		snackPlaceholder,
		targets.TargetCalories,
		goalPhrase,
		targets.TargetCalories,
		targets.ProteinGrams,
		targets.CarbsGrams,
		targets.FatsGrams,
		snackPlaceholder,
		targets.TargetCalories,
	)
}

func goalPhraseFor(goal string) string {
	switch goal {
	case model.GoalLose:
		return "lose weight"
	case model.GoalGain:
		return "gain weight"
	default:
		return "maintain your weight"
	}
}

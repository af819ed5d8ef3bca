package model

// NutritionTargets holds the energy and macro figures computed from a
// UserProfile. BMI is rounded to one decimal; BMR is the raw Mifflin-St
// Jeor value before the activity multiplier is applied.
type NutritionTargets struct {
	BMI            float64 `json:"bmi"`
	BMR            float64 `json:"bmr"`
	TDEE           int     `json:"tdee"`
	TargetCalories int     `json:"target_calories"`
	ProteinGrams   int     `json:"protein_grams"`
	CarbsGrams     int     `json:"carbs_grams"`
	FatsGrams      int     `json:"fats_grams"`
}

// NutrientTotals is the per-recipe macro breakdown used for filtering and
// ranking. Amounts are per serving.
type NutrientTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Complete reports whether all four nutrient amounts are present and
// positive. Recipes with incomplete nutrition are discarded before ranking.
func (n NutrientTotals) Complete() bool {
	return n.Calories > 0 && n.Protein > 0 && n.Carbs > 0 && n.Fat > 0
}

// Recipe is a nutritionally verified recipe offered to the plan generator.
type Recipe struct {
	Title     string         `json:"title"`
	Nutrients NutrientTotals `json:"nutrients"`
}

// KnowledgeSnippet is one retrieved piece of nutrition research. Score is
// the cosine similarity between the snippet and the search query, in
// [-1, 1], higher meaning more relevant.
type KnowledgeSnippet struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Category string  `json:"category"`
	Source   string  `json:"source"`
	URL      string  `json:"url"`
	Score    float64 `json:"score"`
}

// PlanResult is the output of one pipeline run: the generated plan text
// plus the targets it was built around. It is returned to the caller and
// not persisted.
type PlanResult struct {
	Plan    string           `json:"plan"`
	Targets NutritionTargets `json:"targets"`
}

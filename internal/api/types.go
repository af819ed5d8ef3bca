package api

import "github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/model"

// GeneratePlanRequest is the plan generation request body. The profile
// fields are flattened so the web client can post its form state as-is.
type GeneratePlanRequest struct {
	Age                int      `json:"age"`
	Gender             string   `json:"gender"`
	Weight             float64  `json:"weight"`
	Height             float64  `json:"height"`
	GoalWeight         float64  `json:"goalWeight"`
	ActivityLevel      string   `json:"activityLevel"`
	Goal               string   `json:"goal"`
	DietaryPreferences string   `json:"dietaryPreferences"`
	Allergies          []string `json:"allergies"`
	MealsPerDay        int      `json:"mealsPerDay"`
}

// Profile converts the request body into a user profile.
func (r *GeneratePlanRequest) Profile() *model.UserProfile {
	return &model.UserProfile{
		Age:                r.Age,
		Gender:             r.Gender,
		WeightLbs:          r.Weight,
		HeightIn:           r.Height,
		GoalWeightLbs:      r.GoalWeight,
		ActivityLevel:      r.ActivityLevel,
		Goal:               r.Goal,
		DietaryPreferences: r.DietaryPreferences,
		Allergies:          r.Allergies,
		MealsPerDay:        r.MealsPerDay,
	}
}

// GeneratePlanResponse is the successful plan generation response.
type GeneratePlanResponse struct {
	Success  bool                   `json:"success"`
	Plan     string                 `json:"plan"`
	Metadata model.NutritionTargets `json:"metadata"`
}

// ErrorResponse is the error response body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

package model

// Gender values accepted by the nutrition pipeline.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Goal values accepted by the nutrition pipeline.
const (
	GoalLose     = "lose"
	GoalGain     = "gain"
	GoalMaintain = "maintain"
)

// Activity levels accepted by the nutrition pipeline.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "veryActive"
)

// DefaultMealsPerDay is used when the caller does not specify a meal count.
const DefaultMealsPerDay = 3

// UserProfile is the biometric and goal input for one plan-generation run.
// It is never mutated by the pipeline.
type UserProfile struct {
	Age                int      `json:"age"`
	Gender             string   `json:"gender"`
	WeightLbs          float64  `json:"weight"`
	HeightIn           float64  `json:"height"`
	GoalWeightLbs      float64  `json:"goalWeight,omitempty"`
	ActivityLevel      string   `json:"activityLevel"`
	Goal               string   `json:"goal"`
	DietaryPreferences string   `json:"dietaryPreferences,omitempty"`
	Allergies          []string `json:"allergies,omitempty"`
	MealsPerDay        int      `json:"mealsPerDay,omitempty"`
}

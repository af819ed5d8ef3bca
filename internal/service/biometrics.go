package service

import (
	"math"

	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/model"
)

// Unit conversions for US-customary profile inputs.
const (
	cmPerInch   = 2.54
	kgPerPound  = 0.453592
	calorieStep = 500 // daily surplus/deficit applied for gain/lose goals
)

// activityMultipliers maps an activity level to its TDEE multiplier. This
// map is also the source of truth for valid activity levels: an unknown
// level is rejected during validation rather than producing a garbage TDEE.
var activityMultipliers = map[string]float64{
	model.ActivitySedentary:  1.15,
	model.ActivityLight:      1.35,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.75,
	model.ActivityVeryActive: 1.95,
}

// macroRatios is a protein/carbs/fats calorie split.
type macroRatios struct {
	Protein float64
	Carbs   float64
	Fats    float64
}

// CalculateNutritionTargets derives BMI, BMR (Mifflin-St Jeor), TDEE,
// target calories and macro grams from a user profile. It is pure and
// deterministic: identical input always yields identical output.
//
// Note: female and other genders share the -161 BMR constant. The formula
// only defines male/female variants, so "other" currently follows the
// female branch.
func CalculateNutritionTargets(p *model.UserProfile) (*model.NutritionTargets, error) {
	var missing []string
	if p.Age == 0 {
		missing = append(missing, "age")
	}
	if p.Gender == "" {
		missing = append(missing, "gender")
	}
	if p.WeightLbs <= 0 {
		missing = append(missing, "weight")
	}
	if p.HeightIn <= 0 {
		missing = append(missing, "height")
	}
	if p.ActivityLevel == "" {
		missing = append(missing, "activityLevel")
	}
	if p.Goal == "" {
		missing = append(missing, "goal")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	multiplier, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		return nil, &ValidationError{Fields: []string{"activityLevel"}}
	}

	heightCm := p.HeightIn * cmPerInch
	weightKg := p.WeightLbs * kgPerPound
	heightM := heightCm / 100

	bmi := math.Round(weightKg/(heightM*heightM)*10) / 10

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(p.Age)
	if p.Gender == model.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := int(math.Round(bmr * multiplier))

	targetCalories := tdee
	switch p.Goal {
	case model.GoalLose:
		targetCalories = tdee - calorieStep
	case model.GoalGain:
		targetCalories = tdee + calorieStep
	}

	ratios := macroRatiosFor(p.Goal, p.DietaryPreferences)
	target := float64(targetCalories)

	return &model.NutritionTargets{
		BMI:            bmi,
		BMR:            bmr,
		TDEE:           tdee,
		TargetCalories: targetCalories,
		ProteinGrams:   int(math.Round(target * ratios.Protein / 4)),
		CarbsGrams:     int(math.Round(target * ratios.Carbs / 4)),
		FatsGrams:      int(math.Round(target * ratios.Fats / 9)),
	}, nil
}

// macroRatiosFor selects the calorie split for a goal. Plant-based gainers
// get a lower protein share since their realistic protein ceiling is lower.
func macroRatiosFor(goal, diet string) macroRatios {
	switch goal {
	case model.GoalGain:
		if diet == "vegetarian" || diet == "vegan" {
			return macroRatios{Protein: 0.25, Carbs: 0.45, Fats: 0.30}
		}
		return macroRatios{Protein: 0.35, Carbs: 0.35, Fats: 0.30}
	case model.GoalLose:
		return macroRatios{Protein: 0.35, Carbs: 0.40, Fats: 0.25}
	default:
		return macroRatios{Protein: 0.30, Carbs: 0.40, Fats: 0.30}
	}
}

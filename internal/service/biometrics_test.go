package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/model"
	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/service"
)

func baseProfile() *model.UserProfile {
	return &model.UserProfile{
		Age:           30,
		Gender:        model.GenderMale,
		WeightLbs:     180,
		HeightIn:      70,
		ActivityLevel: model.ActivityModerate,
		Goal:          model.GoalLose,
	}
}

func TestCalculateNutritionTargets(t *testing.T) {
	t.Run("computes targets for a weight loss profile", func(t *testing.T) {
		targets, err := service.CalculateNutritionTargets(baseProfile())
		require.NoError(t, err)

		assert.Equal(t, 25.8, targets.BMI)
		assert.InDelta(t, 1782.7156, targets.BMR, 0.001)
		assert.Equal(t, 2763, targets.TDEE)
		assert.Equal(t, 2263, targets.TargetCalories)
		assert.Equal(t, 198, targets.ProteinGrams)
		assert.Equal(t, 226, targets.CarbsGrams)
		assert.Equal(t, 63, targets.FatsGrams)
	})

	t.Run("macro energy roughly reconstructs target calories", func(t *testing.T) {
		targets, err := service.CalculateNutritionTargets(baseProfile())
		require.NoError(t, err)

		energy := targets.ProteinGrams*4 + targets.CarbsGrams*4 + targets.FatsGrams*9
		assert.InDelta(t, targets.TargetCalories, energy, 20)
	})

	t.Run("is deterministic", func(t *testing.T) {
		first, err := service.CalculateNutritionTargets(baseProfile())
		require.NoError(t, err)
		second, err := service.CalculateNutritionTargets(baseProfile())
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("goal adjusts target calories by 500", func(t *testing.T) {
		gain := baseProfile()
		gain.Goal = model.GoalGain
		maintain := baseProfile()
		maintain.Goal = model.GoalMaintain

		gainTargets, err := service.CalculateNutritionTargets(gain)
		require.NoError(t, err)
		maintainTargets, err := service.CalculateNutritionTargets(maintain)
		require.NoError(t, err)

		assert.Equal(t, maintainTargets.TDEE, maintainTargets.TargetCalories)
		assert.Equal(t, gainTargets.TDEE+500, gainTargets.TargetCalories)
	})

	t.Run("other gender matches female formula", func(t *testing.T) {
		female := baseProfile()
		female.Gender = model.GenderFemale
		other := baseProfile()
		other.Gender = model.GenderOther

		femaleTargets, err := service.CalculateNutritionTargets(female)
		require.NoError(t, err)
		otherTargets, err := service.CalculateNutritionTargets(other)
		require.NoError(t, err)

		assert.Equal(t, femaleTargets.BMR, otherTargets.BMR)
		assert.Equal(t, femaleTargets, otherTargets)
	})

	t.Run("plant-based gainers get a lower protein share", func(t *testing.T) {
		omnivore := baseProfile()
		omnivore.Goal = model.GoalGain
		vegan := baseProfile()
		vegan.Goal = model.GoalGain
		vegan.DietaryPreferences = "vegan"

		omnivoreTargets, err := service.CalculateNutritionTargets(omnivore)
		require.NoError(t, err)
		veganTargets, err := service.CalculateNutritionTargets(vegan)
		require.NoError(t, err)

		assert.Less(t, veganTargets.ProteinGrams, omnivoreTargets.ProteinGrams)
		assert.Greater(t, veganTargets.CarbsGrams, omnivoreTargets.CarbsGrams)
	})

	t.Run("collects all missing fields", func(t *testing.T) {
		targets, err := service.CalculateNutritionTargets(&model.UserProfile{})
		assert.Nil(t, targets)

		var validationErr *service.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"age", "gender", "weight", "height", "activityLevel", "goal"}, validationErr.Fields)
	})

	t.Run("rejects unknown activity level", func(t *testing.T) {
		profile := baseProfile()
		profile.ActivityLevel = "olympian"

		targets, err := service.CalculateNutritionTargets(profile)
		assert.Nil(t, targets)

		var validationErr *service.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"activityLevel"}, validationErr.Fields)
	})

	t.Run("rejects non-positive weight and height", func(t *testing.T) {
		profile := baseProfile()
		profile.WeightLbs = -1
		profile.HeightIn = 0

		_, err := service.CalculateNutritionTargets(profile)
		var validationErr *service.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"weight", "height"}, validationErr.Fields)
	})
}

package service

import "github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/model"

// fallbackRecipes is the curated recipe dataset served when the live
// catalog is unavailable, rate-limited, or returns nothing usable. Keyed
// by dietary preference. Initialized once and never mutated; callers get
// copies via fallbackFor.
var fallbackRecipes = map[string][]model.Recipe{
	"vegetarian": {
		{Title: "High-Protein Chickpea Buddha Bowl", Nutrients: model.NutrientTotals{Calories: 520, Protein: 24, Carbs: 68, Fat: 16}},
		{Title: "Quinoa Black Bean Burrito Bowl", Nutrients: model.NutrientTotals{Calories: 485, Protein: 22, Carbs: 72, Fat: 12}},
		{Title: "Tofu Scramble with Roasted Vegetables", Nutrients: model.NutrientTotals{Calories: 380, Protein: 28, Carbs: 24, Fat: 18}},
		{Title: "Lentil Dal with Brown Rice", Nutrients: model.NutrientTotals{Calories: 450, Protein: 20, Carbs: 78, Fat: 8}},
		{Title: "Mediterranean Chickpea Salad", Nutrients: model.NutrientTotals{Calories: 420, Protein: 18, Carbs: 52, Fat: 16}},
		{Title: "Tempeh Stir-Fry with Vegetables", Nutrients: model.NutrientTotals{Calories: 410, Protein: 26, Carbs: 38, Fat: 18}},
		{Title: "Mediterranean Farro Bowl with Roasted Veggies", Nutrients: model.NutrientTotals{Calories: 465, Protein: 16, Carbs: 68, Fat: 14}},
		{Title: "Black Bean Sweet Potato Tacos", Nutrients: model.NutrientTotals{Calories: 395, Protein: 15, Carbs: 62, Fat: 10}},
		{Title: "Protein-Packed Overnight Oats", Nutrients: model.NutrientTotals{Calories: 425, Protein: 22, Carbs: 58, Fat: 12}},
		{Title: "Edamame Quinoa Power Bowl", Nutrients: model.NutrientTotals{Calories: 490, Protein: 25, Carbs: 64, Fat: 14}},
		{Title: "Spinach and Feta Frittata", Nutrients: model.NutrientTotals{Calories: 340, Protein: 24, Carbs: 18, Fat: 20}},
		{Title: "Vegetarian Chili with Beans", Nutrients: model.NutrientTotals{Calories: 385, Protein: 19, Carbs: 58, Fat: 9}},
		{Title: "Greek Yogurt Parfait with Granola", Nutrients: model.NutrientTotals{Calories: 380, Protein: 20, Carbs: 54, Fat: 10}},
		{Title: "Veggie-Loaded Whole Wheat Pasta", Nutrients: model.NutrientTotals{Calories: 475, Protein: 18, Carbs: 76, Fat: 12}},
		{Title: "Mushroom and Spinach Quesadilla", Nutrients: model.NutrientTotals{Calories: 420, Protein: 21, Carbs: 48, Fat: 16}},
	},
	"vegan": {
		{Title: "Vegan Protein Smoothie Bowl", Nutrients: model.NutrientTotals{Calories: 450, Protein: 20, Carbs: 62, Fat: 14}},
		{Title: "Tofu and Vegetable Stir-Fry", Nutrients: model.NutrientTotals{Calories: 395, Protein: 24, Carbs: 42, Fat: 15}},
		{Title: "Chickpea Curry with Coconut Milk", Nutrients: model.NutrientTotals{Calories: 480, Protein: 18, Carbs: 58, Fat: 20}},
		{Title: "Vegan Buddha Bowl with Tahini Dressing", Nutrients: model.NutrientTotals{Calories: 510, Protein: 19, Carbs: 68, Fat: 18}},
		{Title: "Black Bean and Quinoa Tacos", Nutrients: model.NutrientTotals{Calories: 420, Protein: 17, Carbs: 64, Fat: 12}},
		{Title: "Lentil Bolognese with Whole Wheat Pasta", Nutrients: model.NutrientTotals{Calories: 465, Protein: 21, Carbs: 72, Fat: 10}},
		{Title: "Tempeh Power Bowl", Nutrients: model.NutrientTotals{Calories: 495, Protein: 28, Carbs: 52, Fat: 18}},
		{Title: "Vegan Protein Pancakes", Nutrients: model.NutrientTotals{Calories: 380, Protein: 18, Carbs: 58, Fat: 10}},
		{Title: "Sweet Potato and Black Bean Bowl", Nutrients: model.NutrientTotals{Calories: 445, Protein: 16, Carbs: 72, Fat: 11}},
		{Title: "Vegan Chili with Cornbread", Nutrients: model.NutrientTotals{Calories: 425, Protein: 19, Carbs: 68, Fat: 9}},
	},
	"none": {
		{Title: "Grilled Chicken with Quinoa and Veggies", Nutrients: model.NutrientTotals{Calories: 520, Protein: 42, Carbs: 48, Fat: 16}},
		{Title: "Salmon Bowl with Brown Rice", Nutrients: model.NutrientTotals{Calories: 580, Protein: 38, Carbs: 52, Fat: 22}},
		{Title: "Turkey and Sweet Potato Hash", Nutrients: model.NutrientTotals{Calories: 465, Protein: 35, Carbs: 48, Fat: 14}},
		{Title: "Greek Chicken Salad", Nutrients: model.NutrientTotals{Calories: 420, Protein: 38, Carbs: 28, Fat: 18}},
		{Title: "Beef and Broccoli Stir-Fry", Nutrients: model.NutrientTotals{Calories: 485, Protein: 36, Carbs: 42, Fat: 18}},
		{Title: "Grilled Fish Tacos", Nutrients: model.NutrientTotals{Calories: 395, Protein: 32, Carbs: 38, Fat: 12}},
		{Title: "Chicken Fajita Bowl", Nutrients: model.NutrientTotals{Calories: 510, Protein: 40, Carbs: 52, Fat: 16}},
		{Title: "Turkey Meatballs with Marinara", Nutrients: model.NutrientTotals{Calories: 445, Protein: 38, Carbs: 36, Fat: 16}},
		{Title: "Shrimp and Veggie Stir-Fry", Nutrients: model.NutrientTotals{Calories: 380, Protein: 34, Carbs: 38, Fat: 10}},
		{Title: "Chicken Burrito Bowl", Nutrients: model.NutrientTotals{Calories: 525, Protein: 42, Carbs: 56, Fat: 14}},
		{Title: "Baked Cod with Roasted Vegetables", Nutrients: model.NutrientTotals{Calories: 395, Protein: 36, Carbs: 32, Fat: 12}},
		{Title: "Steak and Sweet Potato", Nutrients: model.NutrientTotals{Calories: 580, Protein: 44, Carbs: 42, Fat: 24}},
		{Title: "Chicken Pesto Pasta", Nutrients: model.NutrientTotals{Calories: 545, Protein: 38, Carbs: 58, Fat: 18}},
		{Title: "Tuna Poke Bowl", Nutrients: model.NutrientTotals{Calories: 465, Protein: 36, Carbs: 52, Fat: 12}},
		{Title: "Eggs and Turkey Sausage Breakfast", Nutrients: model.NutrientTotals{Calories: 420, Protein: 32, Carbs: 24, Fat: 22}},
	},
}

// FallbackRecipes returns the fallback bucket for a dietary preference,
// defaulting to the unrestricted bucket for unknown keys.
func FallbackRecipes(diet string) []model.Recipe {
	return fallbackFor(diet, "none")
}

func fallbackFor(diet, defaultKey string) []model.Recipe {
	bucket, ok := fallbackRecipes[diet]
	if !ok {
		bucket = fallbackRecipes[defaultKey]
	}
	out := make([]model.Recipe, len(bucket))
	copy(out, bucket)
	return out
}

package types

// MealEntry is a single generated meal. The JSON field names are part of the
// generation contract: the prompt and the response schema both declare them,
// so renaming a tag here breaks parsing of model output.
type MealEntry struct {
	Title              string   `json:"title"`
	Instructions       []string `json:"instructions"`
	IngredientsUsed    []string `json:"ingredientsUsed"`
	MissingIngredients []string `json:"missingIngredients"`
}

// DayPlan holds the meals generated for one day. Slots the user did not ask
// for are left nil.
type DayPlan struct {
	Day       string     `json:"day"`
	Breakfast *MealEntry `json:"breakfast,omitempty"`
	Lunch     *MealEntry `json:"lunch,omitempty"`
	Dinner    *MealEntry `json:"dinner,omitempty"`
}

// MealPlanDocument is the parsed output of a meal plan generation. The
// shopping list is only populated for from-scratch plans.
type MealPlanDocument struct {
	ShoppingList []string  `json:"shopping_list,omitempty"`
	MealPlan     []DayPlan `json:"meal_plan"`
}

// RecipeDocument is the parsed output of a single recipe generation.
type RecipeDocument struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	ShoppingList []string `json:"shopping_list,omitempty"`
}

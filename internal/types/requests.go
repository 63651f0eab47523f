package types

// MealType identifies one of the meal slots a day plan can carry.
type MealType string

const (
	MealTypeBreakfast MealType = "Breakfast"
	MealTypeLunch     MealType = "Lunch"
	MealTypeDinner    MealType = "Dinner"
)

// PlanRequest is the payload for meal plan generation.
// An absent or blank Ingredients field switches the plan into from-scratch
// mode, which requires a shopping list in the generated output.
type PlanRequest struct {
	Ingredients string     `json:"ingredientsText"`
	Cuisine     string     `json:"cuisine"`
	Days        int        `json:"days"`
	MealTypes   []MealType `json:"mealTypes"`
	FamilySize  int        `json:"familySize"`
	DietaryType string     `json:"dietaryType"`
}

// RecipeRequest is the payload for single recipe generation. Either
// RecipeQuery or MealName must be set; MealName is kept for older clients
// that sent the dish name instead of a free-form request.
type RecipeRequest struct {
	Ingredients string `json:"ingredientsText"`
	RecipeQuery string `json:"recipeRequest"`
	MealName    string `json:"mealName"`
	MealType    string `json:"mealType"`
	FamilySize  int    `json:"familySize"`
}

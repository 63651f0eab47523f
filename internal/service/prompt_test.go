package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mealmind/backend/internal/types"
)

func samplePlanRequest() types.PlanRequest {
	return types.PlanRequest{
		Ingredients: "2 eggs, leftover rice",
		Cuisine:     "Thai",
		Days:        3,
		MealTypes:   []types.MealType{types.MealTypeLunch, types.MealTypeDinner},
		FamilySize:  4,
		DietaryType: "vegetarian",
	}
}

func TestBuildMealPlanPromptDeterministic(t *testing.T) {
	req := samplePlanRequest()
	assert.Equal(t, BuildMealPlanPrompt(req), BuildMealPlanPrompt(req))
}

func TestBuildMealPlanPromptInterpolatesFields(t *testing.T) {
	prompt := BuildMealPlanPrompt(samplePlanRequest())

	assert.Contains(t, prompt, "3-day Thai meal plan")
	assert.Contains(t, prompt, "family of 4")
	assert.Contains(t, prompt, "Lunch, Dinner")
	assert.Contains(t, prompt, "vegetarian")
	assert.Contains(t, prompt, "2 eggs, leftover rice")
}

func TestBuildMealPlanPromptIngredientBranch(t *testing.T) {
	t.Run("from scratch requires shopping list", func(t *testing.T) {
		req := samplePlanRequest()
		req.Ingredients = ""
		prompt := BuildMealPlanPrompt(req)

		assert.Contains(t, prompt, "from scratch")
		assert.Contains(t, prompt, "shopping list")
		assert.Contains(t, prompt, `"shopping_list"`)
	})

	t.Run("with ingredients prioritizes leftovers", func(t *testing.T) {
		prompt := BuildMealPlanPrompt(samplePlanRequest())

		assert.Contains(t, prompt, "Prioritize leftovers")
		assert.NotContains(t, prompt, "shopping_list")
		assert.NotContains(t, prompt, "from scratch")
	})

	t.Run("blank ingredients count as absent", func(t *testing.T) {
		req := samplePlanRequest()
		req.Ingredients = "   "
		assert.Equal(t, ModeFromScratch, PlanPromptMode(req))
	})
}

func TestBuildMealPlanPromptDeclaresMealContract(t *testing.T) {
	for _, mode := range []string{"", "2 eggs"} {
		req := samplePlanRequest()
		req.Ingredients = mode
		prompt := BuildMealPlanPrompt(req)

		for _, field := range MealEntryRequiredFields {
			assert.Contains(t, prompt, fmt.Sprintf("%q", field))
		}
		assert.Contains(t, prompt, `"missingIngredients" may be an empty array`)
		assert.Contains(t, prompt, "no markdown code fences")
	}
}

func TestBuildRecipePrompt(t *testing.T) {
	t.Run("uses recipe query", func(t *testing.T) {
		prompt := BuildRecipePrompt(types.RecipeRequest{
			RecipeQuery: "spicy noodle soup",
			MealType:    "Dinner",
			FamilySize:  2,
			Ingredients: "rice noodles",
		})

		assert.Contains(t, prompt, "spicy noodle soup")
		assert.Contains(t, prompt, "Dinner")
		assert.Contains(t, prompt, "serve 2 people")
		assert.Contains(t, prompt, "rice noodles")
		assert.Contains(t, prompt, "Prioritize leftovers")
	})

	t.Run("falls back to meal name", func(t *testing.T) {
		prompt := BuildRecipePrompt(types.RecipeRequest{MealName: "Pad Thai"})

		assert.Contains(t, prompt, "Pad Thai")
		assert.Contains(t, prompt, "no ingredients at home")
	})

	t.Run("declares the document shape", func(t *testing.T) {
		prompt := BuildRecipePrompt(types.RecipeRequest{RecipeQuery: "soup"})

		for _, field := range []string{`"name"`, `"description"`, `"ingredients"`, `"instructions"`, `"shopping_list"`} {
			assert.Contains(t, prompt, field)
		}
	})
}

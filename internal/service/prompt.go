package service

import (
	"fmt"
	"strings"

	"github.com/mealmind/backend/internal/types"
)

// PromptMode selects which instruction template a request maps to.
type PromptMode int

const (
	// ModeIngredientsDriven plans around what the user already has.
	ModeIngredientsDriven PromptMode = iota
	// ModeFromScratch plans with an empty pantry and demands a shopping list.
	ModeFromScratch
	// ModeSingleRecipe produces one recipe instead of a multi-day plan.
	ModeSingleRecipe
)

// MealEntryRequiredFields is the mandatory-field contract for every generated
// meal. The prompt text and the response schema both declare exactly this
// list; keeping it in one place is what keeps them from drifting apart.
var MealEntryRequiredFields = []string{"title", "instructions", "ingredientsUsed", "missingIngredients"}

// PlanPromptMode returns the mode a plan request falls into based on whether
// the user listed any ingredients.
func PlanPromptMode(req types.PlanRequest) PromptMode {
	if strings.TrimSpace(req.Ingredients) == "" {
		return ModeFromScratch
	}
	return ModeIngredientsDriven
}

// BuildMealPlanPrompt maps a validated plan request to the instruction string
// sent to the generation service. It is deterministic: the same request always
// produces the same prompt.
func BuildMealPlanPrompt(req types.PlanRequest) string {
	mode := PlanPromptMode(req)

	mealNames := make([]string, len(req.MealTypes))
	for i, m := range req.MealTypes {
		mealNames[i] = string(m)
	}
	meals := strings.Join(mealNames, ", ")

	var b strings.Builder
	fmt.Fprintf(&b, "You are a professional chef and meal planner. Create a %d-day %s meal plan for a family of %d.\n",
		req.Days, req.Cuisine, req.FamilySize)
	fmt.Fprintf(&b, "Each day must include exactly these meals: %s.\n", meals)
	if req.DietaryType != "" {
		fmt.Fprintf(&b, "Every meal must be %s.\n", req.DietaryType)
	}

	if mode == ModeFromScratch {
		b.WriteString("The user has no ingredients at home. Plan every meal from scratch and produce a consolidated shopping list covering the entire plan in the top-level \"shopping_list\" array.\n")
	} else {
		fmt.Fprintf(&b, "The user has these ingredients available: %s.\n", req.Ingredients)
		b.WriteString("Prioritize leftovers and ingredients close to expiry before calling for anything new.\n")
	}

	b.WriteString("\nRespond with a single JSON object and nothing else. No prose, no markdown code fences.\n")
	b.WriteString("The object must have exactly this structure:\n")
	if mode == ModeFromScratch {
		b.WriteString(`{
  "shopping_list": ["2 lbs chicken breast", "1 bag jasmine rice"],
  "meal_plan": [
`)
	} else {
		b.WriteString(`{
  "meal_plan": [
`)
	}
	b.WriteString(`    {
      "day": "Day 1",
      "lunch": {
        "title": "Meal title",
        "instructions": ["Step one", "Step two"],
        "ingredientsUsed": ["ingredient"],
        "missingIngredients": []
      }
    }
  ]
}
`)
	writeMealContract(&b)
	b.WriteString("Each day object carries \"day\" plus one lowercase key per requested meal (\"breakfast\", \"lunch\", \"dinner\") and no other keys.\n")
	return b.String()
}

// BuildRecipePrompt maps a validated recipe request to its instruction string.
func BuildRecipePrompt(req types.RecipeRequest) string {
	request := strings.TrimSpace(req.RecipeQuery)
	if request == "" {
		request = strings.TrimSpace(req.MealName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a professional chef. Write a single recipe for: %s.\n", request)
	if req.MealType != "" {
		fmt.Fprintf(&b, "The recipe is for %s.\n", req.MealType)
	}
	if req.FamilySize > 0 {
		fmt.Fprintf(&b, "It must serve %d people.\n", req.FamilySize)
	}

	if strings.TrimSpace(req.Ingredients) == "" {
		b.WriteString("The user has no ingredients at home. List everything they need to buy in the \"shopping_list\" array.\n")
	} else {
		fmt.Fprintf(&b, "The user has these ingredients available: %s.\n", req.Ingredients)
		b.WriteString("Prioritize leftovers and ingredients close to expiry; put anything still needed in the \"shopping_list\" array.\n")
	}

	b.WriteString("\nRespond with a single JSON object and nothing else. No prose, no markdown code fences.\n")
	b.WriteString(`The object must have exactly this structure:
{
  "name": "Recipe name",
  "description": "One or two sentences about the dish",
  "ingredients": ["2 cups rice", "3 eggs"],
  "instructions": ["Step one", "Step two"],
  "shopping_list": []
}
Every field must be present. "instructions" must be a non-empty array of steps. "shopping_list" may be an empty array.
`)
	return b.String()
}

// writeMealContract spells out the mandatory per-meal fields in addition to
// the example shape.
func writeMealContract(b *strings.Builder) {
	quoted := make([]string, len(MealEntryRequiredFields))
	for i, f := range MealEntryRequiredFields {
		quoted[i] = fmt.Sprintf("%q", f)
	}
	fmt.Fprintf(b, "Every meal object must include all of: %s.\n", strings.Join(quoted, ", "))
	b.WriteString("\"missingIngredients\" may be an empty array but must always be present. \"instructions\" must be a non-empty array of steps.\n")
}

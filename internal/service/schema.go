package service

import "github.com/google/generative-ai-go/genai"

// Response schemas passed to Gemini when native schema-constrained output is
// enabled. They mirror the document types in internal/types; the required
// lists must stay in step with the prompt contract (see
// MealEntryRequiredFields and the schema tests).

var stringArraySchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: &genai.Schema{Type: genai.TypeString},
}

var mealEntrySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":              {Type: genai.TypeString},
		"instructions":       stringArraySchema,
		"ingredientsUsed":    stringArraySchema,
		"missingIngredients": stringArraySchema,
	},
	Required: MealEntryRequiredFields,
}

var dayPlanSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"day":       {Type: genai.TypeString},
		"breakfast": mealEntrySchema,
		"lunch":     mealEntrySchema,
		"dinner":    mealEntrySchema,
	},
	Required: []string{"day"},
}

// MealPlanSchema constrains meal plan generation output to the
// MealPlanDocument shape.
var MealPlanSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"shopping_list": stringArraySchema,
		"meal_plan": {
			Type:  genai.TypeArray,
			Items: dayPlanSchema,
		},
	},
	Required: []string{"meal_plan"},
}

// RecipeSchema constrains single recipe generation output to the
// RecipeDocument shape.
var RecipeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":          {Type: genai.TypeString},
		"description":   {Type: genai.TypeString},
		"ingredients":   stringArraySchema,
		"instructions":  stringArraySchema,
		"shopping_list": stringArraySchema,
	},
	Required: []string{"name", "description", "ingredients", "instructions"},
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealmind/backend/internal/mocks"
	"github.com/mealmind/backend/internal/service"
	"github.com/mealmind/backend/internal/types"
)

const planRequestBody = `{
	"ingredientsText": "2 eggs, leftover rice",
	"cuisine": "Thai",
	"days": 1,
	"mealTypes": ["Lunch"],
	"familySize": 2
}`

func setupPlannerRouter(gen *mocks.StaticTextGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	planner := service.NewPlannerService(gen, "gemini-1.5-flash", true, nil)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewPlannerHandler(planner).RegisterRoutes(v1, nil)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateMealPlanEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		gen := &mocks.StaticTextGenerator{
			Output: "```json\n" +
				`{"meal_plan":[{"day":"Day 1","lunch":{"title":"Thai Chicken Rice","instructions":["Cook rice"],"ingredientsUsed":["rice"],"missingIngredients":[]}}]}` +
				"\n```",
		}
		router := setupPlannerRouter(gen)

		w := postJSON(router, "/api/v1/meal-plans/generate", planRequestBody)

		require.Equal(t, http.StatusOK, w.Code)
		var doc types.MealPlanDocument
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		require.Len(t, doc.MealPlan, 1)
		require.NotNil(t, doc.MealPlan[0].Lunch)
		assert.Equal(t, "Thai Chicken Rice", doc.MealPlan[0].Lunch.Title)
		assert.Equal(t, 1, gen.Calls)
	})

	t.Run("ingredientsText binds into the prompt", func(t *testing.T) {
		gen := &mocks.StaticTextGenerator{Output: `{"meal_plan":[]}`}
		router := setupPlannerRouter(gen)

		w := postJSON(router, "/api/v1/meal-plans/generate", planRequestBody)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, gen.LastPrompt, "2 eggs, leftover rice")
		assert.Contains(t, gen.LastPrompt, "Prioritize leftovers")
		assert.NotContains(t, gen.LastPrompt, "from scratch")
	})

	t.Run("validation fault returns 400 without invoking generation", func(t *testing.T) {
		gen := &mocks.StaticTextGenerator{Output: "{}"}
		router := setupPlannerRouter(gen)

		w := postJSON(router, "/api/v1/meal-plans/generate", `{"days": 2, "mealTypes": ["Lunch"], "familySize": 2}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "cuisine")
		assert.Zero(t, gen.Calls)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		gen := &mocks.StaticTextGenerator{Output: "{}"}
		router := setupPlannerRouter(gen)

		w := postJSON(router, "/api/v1/meal-plans/generate", `{"days": "two"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, gen.Calls)
	})

	t.Run("generation fault returns generic 500", func(t *testing.T) {
		gen := &mocks.StaticTextGenerator{Err: errors.New("rpc error: unavailable")}
		router := setupPlannerRouter(gen)

		w := postJSON(router, "/api/v1/meal-plans/generate", planRequestBody)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, msgGenerationFailed, body["error"])
		assert.NotContains(t, w.Body.String(), "unavailable")
	})

	t.Run("decode fault returns 500 without leaking raw output", func(t *testing.T) {
		gen := &mocks.StaticTextGenerator{Output: "I'm sorry, I cannot produce JSON today."}
		router := setupPlannerRouter(gen)

		w := postJSON(router, "/api/v1/meal-plans/generate", planRequestBody)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, msgUnreadableOutput, body["error"])
		assert.NotContains(t, w.Body.String(), "cannot produce JSON")
	})
}

func TestGenerateRecipeEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		gen := &mocks.StaticTextGenerator{
			Output: `{"name":"Tom Yum","description":"Hot and sour soup.","ingredients":["shrimp"],"instructions":["Simmer"],"shopping_list":[]}`,
		}
		router := setupPlannerRouter(gen)

		w := postJSON(router, "/api/v1/recipes/generate",
			`{"recipeRequest": "tom yum soup", "ingredientsText": "shrimp, lemongrass", "familySize": 2}`)

		require.Equal(t, http.StatusOK, w.Code)
		var doc types.RecipeDocument
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
		assert.Equal(t, "Tom Yum", doc.Name)
		assert.Contains(t, gen.LastPrompt, "shrimp, lemongrass")
	})

	t.Run("missing request and meal name returns 400", func(t *testing.T) {
		gen := &mocks.StaticTextGenerator{Output: "{}"}
		router := setupPlannerRouter(gen)

		w := postJSON(router, "/api/v1/recipes/generate", `{"familySize": 2}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "recipeRequest")
		assert.Zero(t, gen.Calls)
	})
}

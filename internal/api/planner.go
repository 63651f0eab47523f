package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealmind/backend/internal/service"
	"github.com/mealmind/backend/internal/types"
)

// PlannerHandler handles meal plan and recipe generation requests
type PlannerHandler struct {
	planner *service.PlannerService
}

// NewPlannerHandler creates a new PlannerHandler instance
func NewPlannerHandler(planner *service.PlannerService) *PlannerHandler {
	return &PlannerHandler{planner: planner}
}

// RegisterRoutes registers the generation routes. limit may be nil when no
// rate limiter is configured.
func (h *PlannerHandler) RegisterRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	if limit == nil {
		limit = func(c *gin.Context) { c.Next() }
	}
	router.POST("/meal-plans/generate", limit, h.GenerateMealPlan)
	router.POST("/recipes/generate", limit, h.GenerateRecipe)
}

// GenerateMealPlan handles meal plan generation requests
func (h *PlannerHandler) GenerateMealPlan(c *gin.Context) {
	var req types.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.planner.GenerateMealPlan(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// GenerateRecipe handles single recipe generation requests
func (h *PlannerHandler) GenerateRecipe(c *gin.Context) {
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.planner.GenerateRecipe(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mealmind/backend/internal/service"
)

// RecordsHandler handles saved meal plans and favorite meals
type RecordsHandler struct {
	records *service.RecordService
}

// NewRecordsHandler creates a new RecordsHandler instance
func NewRecordsHandler(records *service.RecordService) *RecordsHandler {
	return &RecordsHandler{records: records}
}

// RegisterRoutes registers the record store routes
func (h *RecordsHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/meal-plans")
	{
		plans.POST("", h.SaveMealPlan)
		plans.GET("", h.ListMealPlans)
		plans.DELETE("/:id", h.DeleteMealPlan)
	}

	favorites := router.Group("/favorites")
	{
		favorites.POST("", h.AddFavorite)
		favorites.GET("", h.ListFavorites)
		favorites.DELETE("/:id", h.RemoveFavorite)
	}
}

// SaveMealPlan stores a generated meal plan
func (h *RecordsHandler) SaveMealPlan(c *gin.Context) {
	var req struct {
		MealPlan json.RawMessage `json:"mealPlan"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.records.SaveMealPlan(c.Request.Context(), req.MealPlan)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Meal plan saved", "id": rec.ID})
}

// ListMealPlans returns all saved meal plans
func (h *RecordsHandler) ListMealPlans(c *gin.Context) {
	recs, err := h.records.ListMealPlans(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"mealPlans": recs})
}

// DeleteMealPlan removes a saved meal plan by id
func (h *RecordsHandler) DeleteMealPlan(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	if err := h.records.DeleteMealPlan(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal plan deleted"})
}

// AddFavorite stores a favorite meal
func (h *RecordsHandler) AddFavorite(c *gin.Context) {
	var req struct {
		MealData json.RawMessage `json:"mealData"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.records.SaveFavorite(c.Request.Context(), req.MealData)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Meal added to favorites", "id": rec.ID})
}

// ListFavorites returns all favorite meals
func (h *RecordsHandler) ListFavorites(c *gin.Context) {
	recs, err := h.records.ListFavorites(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": recs})
}

// RemoveFavorite removes a favorite meal by id
func (h *RecordsHandler) RemoveFavorite(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		return
	}

	if err := h.records.DeleteFavorite(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
}

func recordID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return 0, false
	}
	return uint(id), true
}

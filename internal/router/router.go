package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mealmind/backend/internal/api"
	"github.com/mealmind/backend/internal/middleware"
)

// SetupRouter configures the application routes. generateLimit is applied to
// the generation endpoints only and may be nil.
func SetupRouter(
	plannerHandler *api.PlannerHandler,
	recordsHandler *api.RecordsHandler,
	generateLimit gin.HandlerFunc,
	db *gorm.DB,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(nil))

	router.GET("/health", api.HealthCheck(db))

	v1 := router.Group("/api/v1")
	plannerHandler.RegisterRoutes(v1, generateLimit)
	recordsHandler.RegisterRoutes(v1)

	return router
}

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mealmind/backend/internal/api"
	"github.com/mealmind/backend/internal/database"
	"github.com/mealmind/backend/internal/mocks"
	"github.com/mealmind/backend/internal/service"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	planner := service.NewPlannerService(&mocks.StaticTextGenerator{Output: "{}"}, "gemini-1.5-flash", true, nil)
	records := service.NewRecordService(db)

	return SetupRouter(api.NewPlannerHandler(planner), api.NewRecordsHandler(records), nil, db)
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRoutesRegistered(t *testing.T) {
	router := setupTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/meal-plans/generate"},
		{http.MethodPost, "/api/v1/recipes/generate"},
		{http.MethodPost, "/api/v1/meal-plans"},
		{http.MethodGet, "/api/v1/meal-plans"},
		{http.MethodPost, "/api/v1/favorites"},
		{http.MethodGet, "/api/v1/favorites"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.NotEqual(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestRequestIDHeaderSet(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

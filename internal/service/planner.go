package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/redis/go-redis/v9"

	"github.com/mealmind/backend/internal/types"
)

// Generated documents are cached by prompt hash. Identical requests within
// the window get the cached plan instead of a fresh generation call.
const generationCacheTTL = time.Hour

// PlannerService drives a generation request end to end: validate the
// request, build the prompt, invoke the model, sanitize and decode the
// output. Validation failures short-circuit before any external call.
type PlannerService struct {
	generator TextGenerator
	modelID   string
	useSchema bool
	redis     *redis.Client
}

// NewPlannerService creates a PlannerService. redisClient may be nil, which
// disables response caching.
func NewPlannerService(generator TextGenerator, modelID string, useSchema bool, redisClient *redis.Client) *PlannerService {
	return &PlannerService{
		generator: generator,
		modelID:   modelID,
		useSchema: useSchema,
		redis:     redisClient,
	}
}

// GenerateMealPlan produces a multi-day meal plan for the request.
func (s *PlannerService) GenerateMealPlan(ctx context.Context, req types.PlanRequest) (*types.MealPlanDocument, error) {
	if err := validatePlanRequest(req); err != nil {
		return nil, err
	}

	prompt := BuildMealPlanPrompt(req)

	var doc types.MealPlanDocument
	if s.cacheGet(ctx, prompt, &doc) {
		return &doc, nil
	}

	raw, err := s.invoke(ctx, prompt, MealPlanSchema)
	if err != nil {
		return nil, err
	}
	if err := decodeDocument(raw, &doc); err != nil {
		return nil, err
	}

	s.cacheSet(ctx, prompt, &doc)
	return &doc, nil
}

// GenerateRecipe produces a single recipe for the request.
func (s *PlannerService) GenerateRecipe(ctx context.Context, req types.RecipeRequest) (*types.RecipeDocument, error) {
	if err := validateRecipeRequest(req); err != nil {
		return nil, err
	}

	prompt := BuildRecipePrompt(req)

	var doc types.RecipeDocument
	if s.cacheGet(ctx, prompt, &doc) {
		return &doc, nil
	}

	raw, err := s.invoke(ctx, prompt, RecipeSchema)
	if err != nil {
		return nil, err
	}
	if err := decodeDocument(raw, &doc); err != nil {
		return nil, err
	}

	s.cacheSet(ctx, prompt, &doc)
	return &doc, nil
}

// invoke performs the single generation attempt and sanitizes its output.
func (s *PlannerService) invoke(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	if !s.useSchema {
		schema = nil
	}
	raw, err := s.generator.GenerateText(ctx, s.modelID, prompt, schema)
	if err != nil {
		return "", &GenerationError{Err: err}
	}
	return SanitizeModelOutput(raw), nil
}

func validatePlanRequest(req types.PlanRequest) error {
	if strings.TrimSpace(req.Cuisine) == "" {
		return &ValidationError{Field: "cuisine", Message: "is required"}
	}
	if req.Days < 1 {
		return &ValidationError{Field: "days", Message: "must be at least 1"}
	}
	if len(req.MealTypes) == 0 {
		return &ValidationError{Field: "mealTypes", Message: "at least one meal type is required"}
	}
	if req.FamilySize < 1 {
		return &ValidationError{Field: "familySize", Message: "must be at least 1"}
	}
	return nil
}

func validateRecipeRequest(req types.RecipeRequest) error {
	if strings.TrimSpace(req.RecipeQuery) == "" && strings.TrimSpace(req.MealName) == "" {
		return &ValidationError{Field: "recipeRequest", Message: "either recipeRequest or mealName is required"}
	}
	return nil
}

func (s *PlannerService) cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return "mealmind:gen:" + hex.EncodeToString(sum[:])
}

func (s *PlannerService) cacheGet(ctx context.Context, prompt string, v any) bool {
	if s.redis == nil {
		return false
	}
	data, err := s.redis.Get(ctx, s.cacheKey(prompt)).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("dropping unreadable cached document: %v", err)
		return false
	}
	return true
}

func (s *PlannerService) cacheSet(ctx context.Context, prompt string, v any) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, s.cacheKey(prompt), data, generationCacheTTL).Err(); err != nil {
		log.Printf("failed to cache generated document: %v", err)
	}
}

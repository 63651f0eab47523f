package service

import (
	"context"
	"encoding/json"
	"log"

	"gorm.io/gorm"

	"github.com/mealmind/backend/internal/model"
)

// RecordService is the persistence collaborator for saved meal plans and
// favorite meals. Payloads are opaque JSON blobs keyed by autogenerated id;
// they are decoded lazily on read and never mutated after creation.
type RecordService struct {
	db *gorm.DB
}

// NewRecordService creates a new RecordService instance.
func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{db: db}
}

// SaveMealPlan stores a meal plan payload and returns the created record.
func (s *RecordService) SaveMealPlan(ctx context.Context, payload json.RawMessage) (*model.SavedMealPlan, error) {
	if err := checkPayload("mealPlan", payload); err != nil {
		return nil, err
	}
	rec := &model.SavedMealPlan{Payload: model.JSONPayload(payload)}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// ListMealPlans returns all saved meal plans, newest first. Records whose
// stored payload no longer parses are skipped with a logged warning rather
// than forwarded.
func (s *RecordService) ListMealPlans(ctx context.Context) ([]model.SavedMealPlan, error) {
	var recs []model.SavedMealPlan
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]model.SavedMealPlan, 0, len(recs))
	for _, r := range recs {
		if !json.Valid(r.Payload) {
			log.Printf("skipping saved meal plan %d: stored payload is not valid JSON", r.ID)
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// DeleteMealPlan removes a saved meal plan by id.
func (s *RecordService) DeleteMealPlan(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&model.SavedMealPlan{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SaveFavorite stores a favorite meal payload and returns the created record.
func (s *RecordService) SaveFavorite(ctx context.Context, payload json.RawMessage) (*model.FavoriteMeal, error) {
	if err := checkPayload("mealData", payload); err != nil {
		return nil, err
	}
	rec := &model.FavoriteMeal{Payload: model.JSONPayload(payload)}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// ListFavorites returns all favorite meals, newest first, skipping records
// whose stored payload no longer parses.
func (s *RecordService) ListFavorites(ctx context.Context) ([]model.FavoriteMeal, error) {
	var recs []model.FavoriteMeal
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]model.FavoriteMeal, 0, len(recs))
	for _, r := range recs {
		if !json.Valid(r.Payload) {
			log.Printf("skipping favorite meal %d: stored payload is not valid JSON", r.ID)
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// DeleteFavorite removes a favorite meal by id.
func (s *RecordService) DeleteFavorite(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&model.FavoriteMeal{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func checkPayload(field string, payload json.RawMessage) error {
	if len(payload) == 0 || string(payload) == "null" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	if !json.Valid(payload) {
		return &ValidationError{Field: field, Message: "must be valid JSON"}
	}
	return nil
}

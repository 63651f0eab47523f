package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONPayload stores an opaque JSON document in a jsonb column. The records
// table never interprets the payload; it is decoded lazily by readers.
type JSONPayload json.RawMessage

// Value implements the driver.Valuer interface
func (p JSONPayload) Value() (driver.Value, error) {
	if len(p) == 0 {
		return "null", nil
	}
	return string(p), nil
}

// Scan implements the sql.Scanner interface
func (p *JSONPayload) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		*p = append((*p)[0:0], v...)
	case string:
		*p = JSONPayload(v)
	default:
		return fmt.Errorf("unsupported payload column type %T", value)
	}
	return nil
}

// MarshalJSON emits the stored document verbatim.
func (p JSONPayload) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return p, nil
}

// UnmarshalJSON stores the document verbatim.
func (p *JSONPayload) UnmarshalJSON(data []byte) error {
	*p = append((*p)[0:0], data...)
	return nil
}

// SavedMealPlan is a stored meal plan record. The payload is the full
// MealPlanDocument as submitted by the client.
type SavedMealPlan struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Payload   JSONPayload `gorm:"type:jsonb;not null" json:"mealPlan"`
}

func (SavedMealPlan) TableName() string {
	return "saved_meal_plans"
}

// FavoriteMeal is a stored favorite meal record.
type FavoriteMeal struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Payload   JSONPayload `gorm:"type:jsonb;not null" json:"mealData"`
}

func (FavoriteMeal) TableName() string {
	return "favorite_meals"
}

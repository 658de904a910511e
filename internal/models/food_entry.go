package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodEntry is one logged food item for one user on one date.
// Nutrient fields are per single serving; aggregated totals multiply by Count.
type FoodEntry struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id" example:"a3f1c9d2-0b4e-4f7a-9c1d-2e5b8a7f6c3d"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	UserID    uint      `gorm:"index" json:"user_id" example:"1"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Date      string    `gorm:"size:10;index" json:"date" example:"2024-01-01"`
	Name      string    `json:"name" example:"Buffalo Milk"`
	Calories  float64   `json:"calories" example:"150"`
	Protein   float64   `json:"protein" example:"8"`
	Carbs     float64   `json:"carbs" example:"12"`
	Fat       float64   `json:"fat" example:"8"`
	Fiber     *float64  `json:"fiber,omitempty" example:"0"`
	Sugar     *float64  `json:"sugar,omitempty" example:"12"`
	Count     float64   `gorm:"default:1" json:"count" example:"1"`
	MealType  string    `gorm:"size:16" json:"meal_type,omitempty" example:"breakfast"`
}

// BeforeCreate assigns a UUID and normalizes a non-positive serving count to 1.
func (f *FoodEntry) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.Count <= 0 {
		f.Count = 1
	}
	return nil
}

// EntryDate implements analytics date grouping.
func (f FoodEntry) EntryDate() string { return f.Date }

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Workout categories recognized by the tracker. CSV import maps free-text
// category values onto these; anything unmatched becomes "other".
const (
	CategoryStrength    = "strength"
	CategoryCardio      = "cardio"
	CategoryFlexibility = "flexibility"
	CategoryOther       = "other"
)

// WorkoutEntry is one logged exercise instance. All numeric metrics are
// pointers: nil means the value was never provided, which matters for
// averaging (absent values are excluded, zero values are not invented).
type WorkoutEntry struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id" example:"7c2e5b8a-7f6c-4d3d-a3f1-c9d20b4e4f7a"`
	CreatedAt      time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt      time.Time `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	UserID         uint      `gorm:"index" json:"user_id" example:"1"`
	User           User      `gorm:"foreignKey:UserID" json:"-"`
	Date           string    `gorm:"size:10;index" json:"date" example:"2024-01-01"`
	Exercise       string    `json:"exercise" example:"Bench Press"`
	Category       string    `gorm:"size:16" json:"category" example:"strength"`
	Sets           *float64  `json:"sets,omitempty" example:"3"`
	Reps           *float64  `json:"reps,omitempty" example:"10"`
	Weight         *float64  `json:"weight,omitempty" example:"60"`
	Duration       *float64  `json:"duration,omitempty" example:"45"`
	Distance       *float64  `json:"distance,omitempty" example:"5"`
	CaloriesBurned *float64  `json:"calories_burned,omitempty" example:"300"`
	Notes          string    `json:"notes,omitempty"`
}

// BeforeCreate assigns a UUID and defaults an empty category to "other".
func (w *WorkoutEntry) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.Category == "" {
		w.Category = CategoryOther
	}
	return nil
}

// EntryDate implements analytics date grouping.
func (w WorkoutEntry) EntryDate() string { return w.Date }

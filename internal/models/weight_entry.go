package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeightEntry is one body-weight measurement in kilograms. Multiple entries
// on the same date are allowed; "latest weight" resolution picks the most
// recent by date ordering.
type WeightEntry struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id" example:"0b4e4f7a-9c1d-4e5b-8a7f-6c3da3f1c9d2"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	UserID    uint      `gorm:"index" json:"user_id" example:"1"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Date      string    `gorm:"size:10;index" json:"date" example:"2024-01-01"`
	Weight    float64   `json:"weight" example:"72.5"`
	BodyFat   *float64  `json:"body_fat,omitempty" example:"18.2"`
	Notes     string    `json:"notes,omitempty"`
}

func (w *WeightEntry) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// EntryDate implements analytics date grouping.
func (w WeightEntry) EntryDate() string { return w.Date }

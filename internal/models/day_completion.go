package models

import "time"

// DayCompletion is a manual marker that a given date's food log is final.
// When present it overrides the derived completeness of that date in either
// direction; past days without a marker are auto-derived from their entries.
type DayCompletion struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	UserID    uint      `gorm:"index:idx_day_completion_user_date,unique" json:"user_id" example:"1"`
	Date      string    `gorm:"size:10;index:idx_day_completion_user_date,unique" json:"date" example:"2024-01-01"`
	Complete  bool      `json:"complete" example:"true"`
}

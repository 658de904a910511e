package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity levels accepted on a profile. The multiplier table in the
// analytics package is the single source of truth for their TDEE factors.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "veryActive"
)

// ActivityLevels is the set of accepted activity level strings.
var ActivityLevels = map[string]struct{}{
	ActivitySedentary:  {},
	ActivityLight:      {},
	ActivityModerate:   {},
	ActivityActive:     {},
	ActivityVeryActive: {},
}

// UserProfile carries the derived-calculation parameters (BMR, TDEE, goal
// projections). It is settings, not an activity log: one row per user,
// user-edited, with defaults supplied when absent.
type UserProfile struct {
	ID            uint           `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt     time.Time      `json:"created_at" example:"2024-01-01T00:00:00Z"`
	UpdatedAt     time.Time      `json:"updated_at" example:"2024-01-01T00:00:00Z"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
	UserID        uint           `gorm:"unique" json:"user_id" example:"1"`
	Height        float64        `json:"height" example:"170"`
	Age           int            `json:"age" example:"25"`
	Gender        string         `gorm:"size:8" json:"gender" example:"male"`
	ActivityLevel string         `gorm:"size:16" json:"activity_level" example:"moderate"`
	GoalWeight    *float64       `json:"goal_weight,omitempty" example:"70"`
	WeeklyGoal    *float64       `json:"weekly_goal,omitempty" example:"0.5"`
}

// DefaultUserProfile returns the profile used when a user has not saved one.
func DefaultUserProfile(userID uint) UserProfile {
	weekly := 0.5
	return UserProfile{
		UserID:        userID,
		Height:        170,
		Age:           25,
		Gender:        "male",
		ActivityLevel: ActivityModerate,
		WeeklyGoal:    &weekly,
	}
}

package repository

import (
	"errors"

	"fithood/internal/models"

	"gorm.io/gorm"
)

type UserProfileRepository interface {
	FindByUserID(userID uint) (*models.UserProfile, error)
	Upsert(profile *models.UserProfile) error
	DeleteByUserID(userID uint) error
}

type userProfileRepository struct {
	db *gorm.DB
}

func NewUserProfileRepository(db *gorm.DB) UserProfileRepository {
	return &userProfileRepository{db}
}

// FindByUserID returns the user's profile, or nil when none has been saved.
// Absence is not an error: callers substitute the documented defaults.
func (r *userProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert creates the profile on first save and replaces the stored fields on
// subsequent ones. A user has at most one profile row.
func (r *userProfileRepository) Upsert(profile *models.UserProfile) error {
	var existing models.UserProfile
	err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}
	profile.ID = existing.ID
	profile.CreatedAt = existing.CreatedAt
	return r.db.Save(profile).Error
}

func (r *userProfileRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.UserProfile{}).Error
}

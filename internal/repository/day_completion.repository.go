package repository

import (
	"errors"

	"fithood/internal/models"

	"gorm.io/gorm"
)

type DayCompletionRepository interface {
	// Mark records the manual completion flag for a user/date, replacing any
	// previous marker for that date.
	Mark(userID uint, date string, complete bool) error
	// Find returns the marker for a date, or nil when the day was never
	// manually marked.
	Find(userID uint, date string) (*models.DayCompletion, error)
	FindByUserIDAndDateRange(userID uint, startDate, endDate string) ([]models.DayCompletion, error)
}

type dayCompletionRepository struct {
	db *gorm.DB
}

func NewDayCompletionRepository(db *gorm.DB) DayCompletionRepository {
	return &dayCompletionRepository{db}
}

func (r *dayCompletionRepository) Mark(userID uint, date string, complete bool) error {
	var existing models.DayCompletion
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&models.DayCompletion{UserID: userID, Date: date, Complete: complete}).Error
	}
	if err != nil {
		return err
	}
	existing.Complete = complete
	return r.db.Save(&existing).Error
}

func (r *dayCompletionRepository) Find(userID uint, date string) (*models.DayCompletion, error) {
	var marker models.DayCompletion
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&marker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &marker, nil
}

func (r *dayCompletionRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate string) ([]models.DayCompletion, error) {
	var markers []models.DayCompletion
	err := r.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, startDate, endDate).
		Find(&markers).Error
	return markers, err
}

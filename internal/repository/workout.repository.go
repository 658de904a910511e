package repository

import (
	"fithood/internal/models"

	"gorm.io/gorm"
)

type WorkoutRepository interface {
	Create(entry *models.WorkoutEntry) error
	CreateBatch(entries []models.WorkoutEntry) error
	FindByID(id string) (*models.WorkoutEntry, error)
	FindAllByUserID(userID uint) ([]models.WorkoutEntry, error)
	FindByUserIDAndDate(userID uint, date string) ([]models.WorkoutEntry, error)
	FindByUserIDAndDateRange(userID uint, startDate, endDate string) ([]models.WorkoutEntry, error)
	Update(entry *models.WorkoutEntry) error
	Delete(id string) error
	DeleteAllByUserIDAndDate(userID uint, date string) error
	DeleteAllByUserID(userID uint) error
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db}
}

func (r *workoutRepository) Create(entry *models.WorkoutEntry) error {
	return r.db.Create(entry).Error
}

func (r *workoutRepository) CreateBatch(entries []models.WorkoutEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Create(&entries).Error
}

func (r *workoutRepository) FindByID(id string) (*models.WorkoutEntry, error) {
	var entry models.WorkoutEntry
	err := r.db.Where("id = ?", id).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *workoutRepository) FindAllByUserID(userID uint) ([]models.WorkoutEntry, error) {
	var entries []models.WorkoutEntry
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *workoutRepository) FindByUserIDAndDate(userID uint, date string) ([]models.WorkoutEntry, error) {
	var entries []models.WorkoutEntry
	err := r.db.Where("user_id = ? AND date = ?", userID, date).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

// FindByUserIDAndDateRange returns entries with startDate <= date <= endDate,
// bounds inclusive.
func (r *workoutRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate string) ([]models.WorkoutEntry, error) {
	var entries []models.WorkoutEntry
	err := r.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *workoutRepository) Update(entry *models.WorkoutEntry) error {
	return r.db.Save(entry).Error
}

func (r *workoutRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.WorkoutEntry{}).Error
}

func (r *workoutRepository) DeleteAllByUserIDAndDate(userID uint, date string) error {
	return r.db.Where("user_id = ? AND date = ?", userID, date).Delete(&models.WorkoutEntry{}).Error
}

func (r *workoutRepository) DeleteAllByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.WorkoutEntry{}).Error
}

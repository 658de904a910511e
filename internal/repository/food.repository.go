package repository

import (
	"fithood/internal/models"

	"gorm.io/gorm"
)

type FoodRepository interface {
	Create(entry *models.FoodEntry) error
	CreateBatch(entries []models.FoodEntry) error
	FindByID(id string) (*models.FoodEntry, error)
	FindAllByUserID(userID uint) ([]models.FoodEntry, error)
	FindByUserIDAndDate(userID uint, date string) ([]models.FoodEntry, error)
	FindByUserIDAndDateRange(userID uint, startDate, endDate string) ([]models.FoodEntry, error)
	Update(entry *models.FoodEntry) error
	Delete(id string) error
	DeleteAllByUserIDAndDate(userID uint, date string) error
	DeleteAllByUserID(userID uint) error
}

type foodRepository struct {
	db *gorm.DB
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db}
}

func (r *foodRepository) Create(entry *models.FoodEntry) error {
	return r.db.Create(entry).Error
}

func (r *foodRepository) CreateBatch(entries []models.FoodEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Create(&entries).Error
}

func (r *foodRepository) FindByID(id string) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	err := r.db.Where("id = ?", id).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *foodRepository) FindAllByUserID(userID uint) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *foodRepository) FindByUserIDAndDate(userID uint, date string) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := r.db.Where("user_id = ? AND date = ?", userID, date).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

// FindByUserIDAndDateRange returns entries with startDate <= date <= endDate,
// bounds inclusive.
func (r *foodRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate string) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := r.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *foodRepository) Update(entry *models.FoodEntry) error {
	return r.db.Save(entry).Error
}

func (r *foodRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.FoodEntry{}).Error
}

func (r *foodRepository) DeleteAllByUserIDAndDate(userID uint, date string) error {
	return r.db.Where("user_id = ? AND date = ?", userID, date).Delete(&models.FoodEntry{}).Error
}

func (r *foodRepository) DeleteAllByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.FoodEntry{}).Error
}

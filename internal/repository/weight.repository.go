package repository

import (
	"fithood/internal/models"

	"gorm.io/gorm"
)

// WeightRepository has no bulk delete-by-date operation: weight logs are
// single measurements, not day-scoped lists.
type WeightRepository interface {
	Create(entry *models.WeightEntry) error
	CreateBatch(entries []models.WeightEntry) error
	FindByID(id string) (*models.WeightEntry, error)
	FindAllByUserID(userID uint) ([]models.WeightEntry, error)
	FindByUserIDAndDateRange(userID uint, startDate, endDate string) ([]models.WeightEntry, error)
	Update(entry *models.WeightEntry) error
	Delete(id string) error
	DeleteAllByUserID(userID uint) error
}

type weightRepository struct {
	db *gorm.DB
}

func NewWeightRepository(db *gorm.DB) WeightRepository {
	return &weightRepository{db}
}

func (r *weightRepository) Create(entry *models.WeightEntry) error {
	return r.db.Create(entry).Error
}

func (r *weightRepository) CreateBatch(entries []models.WeightEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Create(&entries).Error
}

func (r *weightRepository) FindByID(id string) (*models.WeightEntry, error) {
	var entry models.WeightEntry
	err := r.db.Where("id = ?", id).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *weightRepository) FindAllByUserID(userID uint) ([]models.WeightEntry, error) {
	var entries []models.WeightEntry
	err := r.db.Where("user_id = ?", userID).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

func (r *weightRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate string) ([]models.WeightEntry, error) {
	var entries []models.WeightEntry
	err := r.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}

func (r *weightRepository) Update(entry *models.WeightEntry) error {
	return r.db.Save(entry).Error
}

func (r *weightRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.WeightEntry{}).Error
}

func (r *weightRepository) DeleteAllByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.WeightEntry{}).Error
}

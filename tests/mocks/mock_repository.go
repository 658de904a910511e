package mocks

import (
	"fithood/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockFoodRepository
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) Create(entry *models.FoodEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockFoodRepository) CreateBatch(entries []models.FoodEntry) error {
	args := m.Called(entries)
	return args.Error(0)
}

func (m *MockFoodRepository) FindByID(id string) (*models.FoodEntry, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodEntry), args.Error(1)
}

func (m *MockFoodRepository) FindAllByUserID(userID uint) ([]models.FoodEntry, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.FoodEntry), args.Error(1)
}

func (m *MockFoodRepository) FindByUserIDAndDate(userID uint, date string) ([]models.FoodEntry, error) {
	args := m.Called(userID, date)
	return args.Get(0).([]models.FoodEntry), args.Error(1)
}

func (m *MockFoodRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate string) ([]models.FoodEntry, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).([]models.FoodEntry), args.Error(1)
}

func (m *MockFoodRepository) Update(entry *models.FoodEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockFoodRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockFoodRepository) DeleteAllByUserIDAndDate(userID uint, date string) error {
	args := m.Called(userID, date)
	return args.Error(0)
}

func (m *MockFoodRepository) DeleteAllByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// Shared MockWorkoutRepository
type MockWorkoutRepository struct {
	mock.Mock
}

func (m *MockWorkoutRepository) Create(entry *models.WorkoutEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockWorkoutRepository) CreateBatch(entries []models.WorkoutEntry) error {
	args := m.Called(entries)
	return args.Error(0)
}

func (m *MockWorkoutRepository) FindByID(id string) (*models.WorkoutEntry, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkoutEntry), args.Error(1)
}

func (m *MockWorkoutRepository) FindAllByUserID(userID uint) ([]models.WorkoutEntry, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.WorkoutEntry), args.Error(1)
}

func (m *MockWorkoutRepository) FindByUserIDAndDate(userID uint, date string) ([]models.WorkoutEntry, error) {
	args := m.Called(userID, date)
	return args.Get(0).([]models.WorkoutEntry), args.Error(1)
}

func (m *MockWorkoutRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate string) ([]models.WorkoutEntry, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).([]models.WorkoutEntry), args.Error(1)
}

func (m *MockWorkoutRepository) Update(entry *models.WorkoutEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockWorkoutRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockWorkoutRepository) DeleteAllByUserIDAndDate(userID uint, date string) error {
	args := m.Called(userID, date)
	return args.Error(0)
}

func (m *MockWorkoutRepository) DeleteAllByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// Shared MockWeightRepository
type MockWeightRepository struct {
	mock.Mock
}

func (m *MockWeightRepository) Create(entry *models.WeightEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockWeightRepository) CreateBatch(entries []models.WeightEntry) error {
	args := m.Called(entries)
	return args.Error(0)
}

func (m *MockWeightRepository) FindByID(id string) (*models.WeightEntry, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeightEntry), args.Error(1)
}

func (m *MockWeightRepository) FindAllByUserID(userID uint) ([]models.WeightEntry, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.WeightEntry), args.Error(1)
}

func (m *MockWeightRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate string) ([]models.WeightEntry, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).([]models.WeightEntry), args.Error(1)
}

func (m *MockWeightRepository) Update(entry *models.WeightEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockWeightRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockWeightRepository) DeleteAllByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// Shared MockUserProfileRepository
type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) Upsert(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) DeleteByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// Shared MockDayCompletionRepository
type MockDayCompletionRepository struct {
	mock.Mock
}

func (m *MockDayCompletionRepository) Mark(userID uint, date string, complete bool) error {
	args := m.Called(userID, date, complete)
	return args.Error(0)
}

func (m *MockDayCompletionRepository) Find(userID uint, date string) (*models.DayCompletion, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DayCompletion), args.Error(1)
}

func (m *MockDayCompletionRepository) FindByUserIDAndDateRange(userID uint, startDate, endDate string) ([]models.DayCompletion, error) {
	args := m.Called(userID, startDate, endDate)
	return args.Get(0).([]models.DayCompletion), args.Error(1)
}

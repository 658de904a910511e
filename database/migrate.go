package database

import (
	"log"

	"fithood/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.FoodEntry{},
		&models.WorkoutEntry{},
		&models.WeightEntry{},
		&models.DayCompletion{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"fithood/database"
	"fithood/internal/models"
	"fithood/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	email := seedCmd.String("email", "demo@fithood.local", "Email for the demo user")
	password := seedCmd.String("password", "demo-password", "Password for the demo user")
	days := seedCmd.Int("days", 30, "Number of past days to fill with demo entries")

	clearCmd := flag.NewFlagSet("clear", flag.ExitOnError)
	clearEmail := clearCmd.String("email", "demo@fithood.local", "Email of the user whose data to clear")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])
		if err := seedDemoData(*email, *password, *days); err != nil {
			log.Fatalf("Error seeding demo data: %v", err)
		}
		log.Printf("Seeded %d days of demo data for %s", *days, *email)
	case "clear":
		clearCmd.Parse(os.Args[2:])
		if err := clearDemoData(*clearEmail); err != nil {
			log.Fatalf("Error clearing demo data: %v", err)
		}
		log.Printf("Cleared demo data for %s", *clearEmail)
	default:
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  seed [--email EMAIL] [--password PASSWORD] [--days N]   Create a demo user with N days of entries")
	fmt.Println("  clear [--email EMAIL]                                   Delete all entries belonging to the user")
}

var demoFoods = []models.FoodEntry{
	{Name: "Oatmeal (1 cup)", Calories: 300, Protein: 10, Carbs: 54, Fat: 5, MealType: "breakfast"},
	{Name: "Grilled Chicken Breast 200g", Calories: 330, Protein: 62, Carbs: 0, Fat: 7, MealType: "lunch"},
	{Name: "Brown Rice (1 cup)", Calories: 215, Protein: 5, Carbs: 45, Fat: 2, MealType: "lunch"},
	{Name: "Greek Yogurt (1 cup)", Calories: 150, Protein: 20, Carbs: 9, Fat: 4, MealType: "snack"},
	{Name: "Banana", Calories: 105, Protein: 1, Carbs: 27, Fat: 0, MealType: "snack"},
	{Name: "Salmon Fillet 150g", Calories: 310, Protein: 34, Carbs: 0, Fat: 18, MealType: "dinner"},
	{Name: "Mixed Salad", Calories: 120, Protein: 3, Carbs: 12, Fat: 7, MealType: "dinner"},
}

var demoWorkouts = []models.WorkoutEntry{
	{Exercise: "Bench Press", Category: models.CategoryStrength},
	{Exercise: "Squat", Category: models.CategoryStrength},
	{Exercise: "Running", Category: models.CategoryCardio},
	{Exercise: "Cycling", Category: models.CategoryCardio},
}

func floatPtr(v float64) *float64 { return &v }

func seedDemoData(email, password string, days int) error {
	userRepo := repository.NewUserRepository(database.DB)
	foodRepo := repository.NewFoodRepository(database.DB)
	workoutRepo := repository.NewWorkoutRepository(database.DB)
	weightRepo := repository.NewWeightRepository(database.DB)
	profileRepo := repository.NewUserProfileRepository(database.DB)

	user, err := userRepo.GetUserByEmail(email)
	if err != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user = &models.User{
			Name:     "Demo User",
			Email:    email,
			Password: string(hashed),
		}
		if err := userRepo.CreateUser(user); err != nil {
			return err
		}
	}

	goal := 75.0
	weekly := 0.5
	profile := models.UserProfile{
		UserID:        user.ID,
		Height:        178,
		Age:           30,
		Gender:        "male",
		ActivityLevel: models.ActivityModerate,
		GoalWeight:    &goal,
		WeeklyGoal:    &weekly,
	}
	if err := profileRepo.Upsert(&profile); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(42))
	weight := 82.0
	now := time.Now()

	for d := days; d >= 1; d-- {
		date := now.AddDate(0, 0, -d).Format("2006-01-02")

		// Three to five meals per day
		var foods []models.FoodEntry
		for _, i := range rng.Perm(len(demoFoods))[:3+rng.Intn(3)] {
			f := demoFoods[i]
			f.Date = date
			f.UserID = user.ID
			f.Count = 1
			foods = append(foods, f)
		}
		if err := foodRepo.CreateBatch(foods); err != nil {
			return err
		}

		// Workouts roughly every other day
		if d%2 == 0 {
			w := demoWorkouts[rng.Intn(len(demoWorkouts))]
			w.Date = date
			w.UserID = user.ID
			switch w.Category {
			case models.CategoryStrength:
				w.Sets = floatPtr(float64(3 + rng.Intn(2)))
				w.Reps = floatPtr(float64(8 + rng.Intn(5)))
				w.Weight = floatPtr(40 + rng.Float64()*40)
				w.CaloriesBurned = floatPtr(150 + rng.Float64()*100)
			case models.CategoryCardio:
				w.Duration = floatPtr(20 + rng.Float64()*40)
				w.Distance = floatPtr(3 + rng.Float64()*7)
				w.CaloriesBurned = floatPtr(200 + rng.Float64()*300)
			}
			if err := workoutRepo.Create(&w); err != nil {
				return err
			}
		}

		// Weekly weigh-in with a gentle downward drift
		if d%7 == 0 {
			weight -= 0.1 + rng.Float64()*0.2
			entry := models.WeightEntry{
				UserID: user.ID,
				Date:   date,
				Weight: weight,
			}
			if err := weightRepo.Create(&entry); err != nil {
				return err
			}
		}
	}

	return nil
}

func clearDemoData(email string) error {
	userRepo := repository.NewUserRepository(database.DB)
	foodRepo := repository.NewFoodRepository(database.DB)
	workoutRepo := repository.NewWorkoutRepository(database.DB)
	weightRepo := repository.NewWeightRepository(database.DB)
	profileRepo := repository.NewUserProfileRepository(database.DB)

	user, err := userRepo.GetUserByEmail(email)
	if err != nil {
		return fmt.Errorf("user %s not found: %w", email, err)
	}

	if err := foodRepo.DeleteAllByUserID(user.ID); err != nil {
		return err
	}
	if err := workoutRepo.DeleteAllByUserID(user.ID); err != nil {
		return err
	}
	if err := weightRepo.DeleteAllByUserID(user.ID); err != nil {
		return err
	}
	return profileRepo.DeleteByUserID(user.ID)
}

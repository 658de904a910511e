package main

import (
	"log"
	"net/http"
	"os"
	"runtime"
	"time"

	"fithood/database"
	"fithood/internal/cache"
	"fithood/internal/controllers"
	"fithood/internal/foodsearch"
	"fithood/internal/repository"
	"fithood/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Connect to database
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	foodRepo := repository.NewFoodRepository(database.DB)
	workoutRepo := repository.NewWorkoutRepository(database.DB)
	weightRepo := repository.NewWeightRepository(database.DB)
	profileRepo := repository.NewUserProfileRepository(database.DB)
	completionRepo := repository.NewDayCompletionRepository(database.DB)

	// Optional Redis cache for food search results
	var redisClient *cache.RedisClient
	if os.Getenv("REDIS_URL") != "" {
		client, err := cache.NewRedisClient()
		if err != nil {
			log.Printf("Warning: Redis connection failed: %v", err)
			log.Println("The application will start, but food searches will skip the cache")
		} else {
			redisClient = client
			defer redisClient.Close()
			log.Println("Redis connection established successfully")
		}
	}

	// Nutrition database client
	searchClient := foodsearch.NewClient(
		os.Getenv("FATSECRET_CLIENT_ID"),
		os.Getenv("FATSECRET_CLIENT_SECRET"),
	)

	// Initialize controllers
	userController := controllers.NewUserController(userRepo)
	oauthController := controllers.NewOauthController(userRepo)
	foodController := controllers.NewFoodController(foodRepo)
	workoutController := controllers.NewWorkoutController(workoutRepo)
	weightController := controllers.NewWeightController(weightRepo)
	profileController := controllers.NewUserProfileController(profileRepo)
	completionController := controllers.NewDayCompletionController(completionRepo)
	searchController := controllers.NewFoodSearchController(searchClient, redisClient)
	dashboardController := controllers.NewDashboardController(
		foodRepo,
		workoutRepo,
		weightRepo,
		profileRepo,
		completionRepo,
	)
	portabilityController := controllers.NewPortabilityController(
		foodRepo,
		workoutRepo,
		weightRepo,
		profileRepo,
		completionRepo,
	)

	gin.SetMode(gin.ReleaseMode)
	// Setup Gin router
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		response := gin.H{
			"message":  "Fithood API is running",
			"version":  "1.0.0",
			"status":   "healthy",
			"database": "PostgreSQL",
		}
		if redisClient != nil {
			response["cache"] = "Redis"
		}
		c.JSON(200, response)
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterOauthRoutes(router, oauthController)
	routes.RegisterFoodRoutes(router, foodController, searchController)
	routes.RegisterWorkoutRoutes(router, workoutController)
	routes.RegisterWeightRoutes(router, weightController)
	routes.RegisterUserProfileRoutes(router, profileController)
	routes.RegisterDashboardRoutes(router, dashboardController, completionController)
	routes.RegisterPortabilityRoutes(router, portabilityController)

	// Debug endpoints
	router.GET("/debug/stats", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		response := gin.H{
			"goroutines": runtime.NumGoroutine(),
			"memory_mb":  m.Alloc / 1024 / 1024,
		}
		if redisClient != nil {
			status, err := redisClient.GetStatus()
			if err != nil {
				response["cache"] = gin.H{"error": err.Error()}
			} else {
				response["cache"] = status
			}
		}
		c.JSON(200, response)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on port %s...", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}

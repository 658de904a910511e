package controllers

import (
	"net/http"

	"fithood/internal/models"
	"fithood/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserProfileController struct {
	repo repository.UserProfileRepository
}

func NewUserProfileController(repo repository.UserProfileRepository) *UserProfileController {
	return &UserProfileController{repo: repo}
}

// GetProfile godoc
// @Summary Get the user's body profile
// @Description Retrieve the profile used for BMR/TDEE calculations. Returns defaults when none has been saved.
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Router /profile [get]
func (pc *UserProfileController) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := pc.repo.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve profile",
			"error":   err.Error(),
		})
		return
	}
	if profile == nil {
		def := models.DefaultUserProfile(userID)
		profile = &def
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    profile,
	})
}

// UpdateProfile godoc
// @Summary Save the user's body profile
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body models.UserProfile true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /profile [put]
func (pc *UserProfileController) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if profile.Height <= 0 || profile.Age <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Height and age must be positive",
			"error":   "Height and age must be greater than zero",
		})
		return
	}
	if _, ok := models.ActivityLevels[profile.ActivityLevel]; !ok {
		profile.ActivityLevel = models.ActivityModerate
	}

	profile.UserID = userID

	if err := pc.repo.Upsert(&profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile saved successfully",
		"data":    profile,
	})
}

package controllers

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

var dateParamRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// timeNow is swapped out in tests to pin aggregation windows.
var timeNow = time.Now

// currentUserID reads the authenticated user id set by the auth middleware.
// Responds 401 and returns false when the request is not authenticated.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
			"error":   "No authenticated user in request context",
		})
		return 0, false
	}
	id, ok := v.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
			"error":   "Invalid user id in request context",
		})
		return 0, false
	}
	return id, true
}

// dateParam validates a YYYY-MM-DD path parameter. Responds 400 and returns
// false on anything else.
func dateParam(c *gin.Context, name string) (string, bool) {
	date := c.Param(name)
	if !dateParamRe.MatchString(date) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "Date must be in YYYY-MM-DD format",
		})
		return "", false
	}
	return date, true
}

// daysQuery reads the optional ?days=N window size, defaulting and clamping
// to something sane for dashboard aggregation.
func daysQuery(c *gin.Context, fallback int) int {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(fallback)))
	if err != nil || days < 1 {
		return fallback
	}
	if days > 365 {
		return 365
	}
	return days
}

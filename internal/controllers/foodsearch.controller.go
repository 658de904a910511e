package controllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"fithood/internal/cache"
	"fithood/internal/foodsearch"

	"github.com/gin-gonic/gin"
)

const searchCacheTTL = 15 * time.Minute

// FoodSearchController proxies queries to the external nutrition database.
// The Redis cache is optional; when nil every query goes to the upstream API.
type FoodSearchController struct {
	client *foodsearch.Client
	cache  *cache.RedisClient
}

func NewFoodSearchController(client *foodsearch.Client, cache *cache.RedisClient) *FoodSearchController {
	return &FoodSearchController{client: client, cache: cache}
}

// SearchFoods godoc
// @Summary Search the nutrition database
// @Description Look up foods by name with per-serving nutrition facts. Upstream failures degrade to an empty result list.
// @Tags search
// @Produce json
// @Param q query string true "Search query (min 2 characters)"
// @Success 200 {object} map[string]interface{} "Search results retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Query too short"
// @Router /food/search [get]
func (fs *FoodSearchController) SearchFoods(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	query := strings.TrimSpace(c.Query("q"))
	if len(query) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Query too short",
			"error":   "Search query must be at least 2 characters",
		})
		return
	}

	if fs.cache != nil {
		var cached []foodsearch.Result
		hit, err := fs.cache.GetSearchResults(query, &cached)
		if err != nil {
			log.Printf("food search cache read failed: %v", err)
		}
		if hit {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Search results retrieved successfully",
				"data": gin.H{
					"query":   query,
					"results": cached,
					"cached":  true,
				},
			})
			return
		}
	}

	results, err := fs.client.Search(c.Request.Context(), query)
	if err != nil {
		// Search is a convenience feature: the caller gets an empty list
		// rather than an error so manual entry keeps working.
		log.Printf("food search failed for %q: %v", query, err)
		results = []foodsearch.Result{}
	} else if fs.cache != nil {
		if err := fs.cache.StoreSearchResults(query, results, searchCacheTTL); err != nil {
			log.Printf("food search cache write failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Search results retrieved successfully",
		"data": gin.H{
			"query":   query,
			"results": results,
			"cached":  false,
		},
	})
}

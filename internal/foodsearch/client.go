package foodsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	tokenURL  = "https://oauth.fatsecret.com/connect/token"
	searchURL = "https://platform.fatsecret.com/rest/server.api"

	// Refresh the cached token a minute before it actually expires.
	tokenExpiryMargin = time.Minute
)

// Result is one candidate food returned by the lookup collaborator.
type Result struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Serving  string  `json:"serving"`
	Source   string  `json:"source"`
}

// tokenCache holds the OAuth2 client-credentials token with its expiry. It
// belongs to the client instance rather than living as package state, so two
// clients never share credentials.
type tokenCache struct {
	mu     sync.Mutex
	token  string
	expiry time.Time
}

// Client queries the FatSecret food database. Construct with NewClient.
type Client struct {
	http         *resty.Client
	clientID     string
	clientSecret string
	cache        tokenCache
}

// NewClient creates a configured FatSecret client.
func NewClient(clientID, clientSecret string) *Client {
	http := resty.New().
		SetTimeout(10 * time.Second)

	return &Client{
		http:         http,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// accessToken returns the cached token, fetching a fresh one when the cache
// is empty or about to expire.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.cache.mu.Lock()
	defer c.cache.mu.Unlock()

	if c.cache.token != "" && time.Now().Before(c.cache.expiry) {
		return c.cache.token, nil
	}

	var tok tokenResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.clientID, c.clientSecret).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetBody("grant_type=client_credentials&scope=basic").
		SetResult(&tok).
		Post(tokenURL)
	if err != nil {
		return "", fmt.Errorf("failed to get access token: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("token endpoint returned %s", resp.Status())
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}

	c.cache.token = tok.AccessToken
	c.cache.expiry = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - tokenExpiryMargin)
	return c.cache.token, nil
}

// searchResponse mirrors the relevant slice of the foods.search payload. The
// API returns an object instead of an array when there is exactly one hit,
// so the food field is decoded lazily.
type searchResponse struct {
	Foods struct {
		Food json.RawMessage `json:"food"`
	} `json:"foods"`
}

type apiFood struct {
	FoodID      string `json:"food_id"`
	FoodName    string `json:"food_name"`
	BrandName   string `json:"brand_name"`
	Description string `json:"food_description"`
}

// Search looks up candidate foods for a free-text query. Callers treat this
// as best-effort enrichment: on error they fall back to an empty list and
// manual entry proceeds regardless.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	var payload searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParams(map[string]string{
			"method":            "foods.search",
			"search_expression": query,
			"format":            "json",
			"max_results":       "10",
		}).
		SetResult(&payload).
		Get(searchURL)
	if err != nil {
		return nil, fmt.Errorf("food search request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("food search returned %s", resp.Status())
	}

	foods, err := decodeFoods(payload.Foods.Food)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(foods))
	for _, f := range foods {
		r := parseDescription(f.Description)
		r.ID = "fs_" + f.FoodID
		r.Name = f.FoodName
		r.Brand = f.BrandName
		r.Source = "fatsecret"
		results = append(results, r)
	}
	return results, nil
}

func decodeFoods(raw json.RawMessage) ([]apiFood, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var list []apiFood
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var single apiFood
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, fmt.Errorf("unexpected food search payload: %w", err)
	}
	return []apiFood{single}, nil
}

var (
	caloriesRe = regexp.MustCompile(`Calories:\s*([\d.]+)`)
	fatRe      = regexp.MustCompile(`Fat:\s*([\d.]+)`)
	carbsRe    = regexp.MustCompile(`Carbs:\s*([\d.]+)`)
	proteinRe  = regexp.MustCompile(`Protein:\s*([\d.]+)`)
	servingRe  = regexp.MustCompile(`Per\s+([^-]+)`)
)

// parseDescription extracts nutrition from a description string shaped like
// "Per 100g - Calories: 89kcal | Fat: 0.33g | Carbs: 22.84g | Protein: 1.09g".
func parseDescription(desc string) Result {
	extract := func(re *regexp.Regexp) float64 {
		m := re.FindStringSubmatch(desc)
		if len(m) < 2 {
			return 0
		}
		n, _ := strconv.ParseFloat(m[1], 64)
		return n
	}

	r := Result{
		Calories: int(math.Round(extract(caloriesRe))),
		Protein:  math.Round(extract(proteinRe)*10) / 10,
		Carbs:    math.Round(extract(carbsRe)*10) / 10,
		Fat:      math.Round(extract(fatRe)*10) / 10,
		Serving:  "100g",
	}
	if m := servingRe.FindStringSubmatch(desc); len(m) >= 2 {
		r.Serving = strings.TrimSpace(m[1])
	}
	return r
}

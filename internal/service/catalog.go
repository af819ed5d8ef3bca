package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/model"
)

// RecipeSearchFilters are the constraints passed to the recipe catalog.
type RecipeSearchFilters struct {
	Diet         string
	Intolerances []string
	MaxCalories  int
	Number       int
}

// RecipeCandidate is a catalog search hit before nutrition enrichment.
type RecipeCandidate struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// SpoonacularService talks to the Spoonacular recipe API. The API is
// rate-limited; quota exhaustion (HTTP 402) is reported as
// ErrQuotaExceeded so callers can stop politely instead of failing.
type SpoonacularService struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewSpoonacularService creates a new SpoonacularService instance.
func NewSpoonacularService(apiKey string) (*SpoonacularService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("SPOONACULAR_API_KEY must be set")
	}

	apiURL := os.Getenv("SPOONACULAR_API_URL")
	if apiURL == "" {
		apiURL = "https://api.spoonacular.com"
	}

	return &SpoonacularService{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// SearchRecipes queries the catalog for candidate recipes matching the
// given filters.
func (s *SpoonacularService) SearchRecipes(ctx context.Context, filters RecipeSearchFilters) ([]RecipeCandidate, error) {
	params := url.Values{}
	params.Set("apiKey", s.apiKey)
	params.Set("number", strconv.Itoa(filters.Number))
	params.Set("addRecipeInformation", "true")
	if filters.Diet != "" {
		params.Set("diet", filters.Diet)
	}
	if len(filters.Intolerances) > 0 {
		params.Set("intolerances", strings.Join(filters.Intolerances, ","))
	}
	if filters.MaxCalories > 0 {
		params.Set("maxCalories", strconv.Itoa(filters.MaxCalories))
	}

	var result struct {
		Results []RecipeCandidate `json:"results"`
	}
	if err := s.get(ctx, "/recipes/complexSearch?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// FetchNutrition returns the per-serving macro breakdown for one recipe.
// Spoonacular returns amounts as strings like "543" or "32g"; non-numeric
// or missing values parse to zero and are filtered out by the caller.
func (s *SpoonacularService) FetchNutrition(ctx context.Context, id int64) (model.NutrientTotals, error) {
	var result struct {
		Calories string `json:"calories"`
		Protein  string `json:"protein"`
		Carbs    string `json:"carbs"`
		Fat      string `json:"fat"`
	}
	path := fmt.Sprintf("/recipes/%d/nutritionWidget.json?apiKey=%s", id, url.QueryEscape(s.apiKey))
	if err := s.get(ctx, path, &result); err != nil {
		return model.NutrientTotals{}, err
	}

	return model.NutrientTotals{
		Calories: parseAmount(result.Calories),
		Protein:  parseAmount(result.Protein),
		Carbs:    parseAmount(result.Carbs),
		Fat:      parseAmount(result.Fat),
	}, nil
}

func (s *SpoonacularService) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusPaymentRequired {
		return ErrQuotaExceeded
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("catalog request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// parseAmount extracts the leading numeric value from strings like "32g"
// or "543 kcal". Anything unparseable yields 0.
func parseAmount(raw string) float64 {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) && (raw[end] >= '0' && raw[end] <= '9' || raw[end] == '.') {
		end++
	}
	v, err := strconv.ParseFloat(raw[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

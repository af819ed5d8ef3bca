package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/service"
)

func newCatalog(t *testing.T, handler http.HandlerFunc) *service.SpoonacularService {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Setenv("SPOONACULAR_API_URL", server.URL)

	catalog, err := service.NewSpoonacularService("test-key")
	require.NoError(t, err)
	return catalog
}

func TestNewSpoonacularService(t *testing.T) {
	t.Run("requires an API key", func(t *testing.T) {
		_, err := service.NewSpoonacularService("")
		assert.Error(t, err)
	})
}

func TestSearchRecipes(t *testing.T) {
	t.Run("passes filters as query parameters", func(t *testing.T) {
		var gotQuery map[string][]string
		catalog := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/recipes/complexSearch", r.URL.Path)
			gotQuery = r.URL.Query()
			w.Write([]byte(`{"results":[{"id":101,"title":"Grilled Tofu Bowl"}]}`))
		})

		candidates, err := catalog.SearchRecipes(context.Background(), service.RecipeSearchFilters{
			Diet:         "vegetarian",
			Intolerances: []string{"peanut", "soy"},
			MaxCalories:  700,
			Number:       30,
		})
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, int64(101), candidates[0].ID)
		assert.Equal(t, "Grilled Tofu Bowl", candidates[0].Title)

		assert.Equal(t, []string{"test-key"}, gotQuery["apiKey"])
		assert.Equal(t, []string{"vegetarian"}, gotQuery["diet"])
		assert.Equal(t, []string{"peanut,soy"}, gotQuery["intolerances"])
		assert.Equal(t, []string{"700"}, gotQuery["maxCalories"])
		assert.Equal(t, []string{"30"}, gotQuery["number"])
		assert.Equal(t, []string{"true"}, gotQuery["addRecipeInformation"])
	})

	t.Run("omits empty filters", func(t *testing.T) {
		catalog := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.False(t, q.Has("diet"))
			assert.False(t, q.Has("intolerances"))
			assert.False(t, q.Has("maxCalories"))
			w.Write([]byte(`{"results":[]}`))
		})

		candidates, err := catalog.SearchRecipes(context.Background(), service.RecipeSearchFilters{Number: 10})
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("maps payment required to quota error", func(t *testing.T) {
		catalog := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
		})

		_, err := catalog.SearchRecipes(context.Background(), service.RecipeSearchFilters{Number: 10})
		assert.ErrorIs(t, err, service.ErrQuotaExceeded)
	})
}

func TestFetchNutrition(t *testing.T) {
	t.Run("parses unit-suffixed amounts", func(t *testing.T) {
		catalog := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/recipes/101/nutritionWidget.json", r.URL.Path)
			w.Write([]byte(`{"calories":"543","protein":"32g","carbs":"45g","fat":"18.5g"}`))
		})

		totals, err := catalog.FetchNutrition(context.Background(), 101)
		require.NoError(t, err)
		assert.Equal(t, 543.0, totals.Calories)
		assert.Equal(t, 32.0, totals.Protein)
		assert.Equal(t, 45.0, totals.Carbs)
		assert.Equal(t, 18.5, totals.Fat)
		assert.True(t, totals.Complete())
	})

	t.Run("unparseable amounts become zero", func(t *testing.T) {
		catalog := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"calories":"n/a","protein":"","carbs":"45g","fat":"18g"}`))
		})

		totals, err := catalog.FetchNutrition(context.Background(), 101)
		require.NoError(t, err)
		assert.Zero(t, totals.Calories)
		assert.Zero(t, totals.Protein)
		assert.False(t, totals.Complete())
	})

	t.Run("maps payment required to quota error", func(t *testing.T) {
		catalog := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
		})

		_, err := catalog.FetchNutrition(context.Background(), 101)
		assert.ErrorIs(t, err, service.ErrQuotaExceeded)
	})

	t.Run("surfaces other HTTP failures", func(t *testing.T) {
		catalog := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := catalog.FetchNutrition(context.Background(), 101)
		require.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrQuotaExceeded)
	})
}

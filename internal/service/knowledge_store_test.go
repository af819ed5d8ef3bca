package service_test

import (
	"context"
	"testing"

	pgvector "github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/model"
	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/service"
	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/testhelpers"
)

// unitVector returns a 1024-dim unit vector pointing along the given axis.
func unitVector(axis int) []float32 {
	vec := make([]float32, 1024)
	vec[axis] = 1
	return vec
}

func seedArticle(t *testing.T, store *service.KnowledgeStore, slug, title string, axis int) {
	t.Helper()
	err := store.Upsert(context.Background(), &model.NutritionArticle{
		Slug:      slug,
		Title:     title,
		Content:   title + " content",
		Category:  "macronutrients",
		Source:    "Wikipedia",
		URL:       "https://en.wikipedia.org/wiki/" + slug,
		Embedding: pgvector.NewVector(unitVector(axis)),
	})
	require.NoError(t, err)
}

func TestKnowledgeStore(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	store := service.NewKnowledgeStore(db)
	ctx := context.Background()

	seedArticle(t, store, "protein", "Protein", 0)
	seedArticle(t, store, "carbohydrate", "Carbohydrate", 1)
	seedArticle(t, store, "dietary_fiber", "Dietary fiber", 2)

	t.Run("search returns closest articles first", func(t *testing.T) {
		// Query mostly along the protein axis with a carbohydrate component.
		query := make([]float32, 1024)
		query[0] = 0.9
		query[1] = 0.3

		snippets, err := store.Search(ctx, query, 2)
		require.NoError(t, err)
		require.Len(t, snippets, 2)

		assert.Equal(t, "Protein", snippets[0].Title)
		assert.Equal(t, "Carbohydrate", snippets[1].Title)
		assert.Greater(t, snippets[0].Score, snippets[1].Score)
		assert.Equal(t, "macronutrients", snippets[0].Category)
		assert.Equal(t, "Wikipedia", snippets[0].Source)
	})

	t.Run("topK caps the result size", func(t *testing.T) {
		snippets, err := store.Search(ctx, unitVector(0), 1)
		require.NoError(t, err)
		assert.Len(t, snippets, 1)
	})

	t.Run("upsert replaces by slug", func(t *testing.T) {
		seedArticle(t, store, "protein", "Protein (updated)", 0)

		count, err := store.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		snippets, err := store.Search(ctx, unitVector(0), 1)
		require.NoError(t, err)
		require.Len(t, snippets, 1)
		assert.Equal(t, "Protein (updated)", snippets[0].Title)
	})
}

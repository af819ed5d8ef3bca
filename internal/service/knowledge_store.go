package service

import (
	"context"
	"fmt"

	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/model"
)

// KnowledgeStore provides similarity search over the nutrition knowledge
// base stored in Postgres with pgvector embeddings.
type KnowledgeStore struct {
	db *gorm.DB
}

// NewKnowledgeStore creates a new KnowledgeStore instance.
func NewKnowledgeStore(db *gorm.DB) *KnowledgeStore {
	return &KnowledgeStore{db: db}
}

// Search returns the topK articles closest to the query embedding by
// cosine similarity, best match first.
func (s *KnowledgeStore) Search(ctx context.Context, embedding []float32, topK int) ([]model.KnowledgeSnippet, error) {
	var matches []struct {
		Title    string
		Content  string
		Category string
		Source   string
		URL      string
		Distance float64
	}

	vec := pgvector.NewVector(embedding)
	err := s.db.WithContext(ctx).
		Model(&model.NutritionArticle{}).
		Select("title, content, category, source, url, embedding <=> ? AS distance", vec).
		Order("distance ASC").
		Limit(topK).
		Scan(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search knowledge base: %w", err)
	}

	snippets := make([]model.KnowledgeSnippet, 0, len(matches))
	for _, m := range matches {
		snippets = append(snippets, model.KnowledgeSnippet{
			Title:    m.Title,
			Content:  m.Content,
			Category: m.Category,
			Source:   m.Source,
			URL:      m.URL,
			// pgvector's <=> operator returns cosine distance in [0, 2].
			Score: 1 - m.Distance,
		})
	}
	return snippets, nil
}

// Upsert inserts an article or replaces the existing row with the same
// slug. Used by the knowledge seeder, which is safe to re-run.
func (s *KnowledgeStore) Upsert(ctx context.Context, article *model.NutritionArticle) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			UpdateAll: true,
		}).
		Create(article).Error
	if err != nil {
		return fmt.Errorf("failed to upsert article %q: %w", article.Slug, err)
	}
	return nil
}

// Count returns the number of stored articles.
func (s *KnowledgeStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&model.NutritionArticle{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return n, nil
}

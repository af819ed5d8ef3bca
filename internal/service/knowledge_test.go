package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/model"
	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/service"
)

type fakeEmbedder struct {
	vec []float32
	err error
	// last input passed to Embed
	text string
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.text = text
	return f.vec, f.err
}

type fakeStore struct {
	snippets []model.KnowledgeSnippet
	err      error
	topK     int
}

func (f *fakeStore) Search(_ context.Context, _ []float32, topK int) ([]model.KnowledgeSnippet, error) {
	f.topK = topK
	return f.snippets, f.err
}

func TestRetrieveSnippets(t *testing.T) {
	snippet := model.KnowledgeSnippet{Title: "Protein", Content: "Protein supports muscle repair.", Score: 0.82}

	t.Run("returns matching snippets", func(t *testing.T) {
		embedder := &fakeEmbedder{vec: []float32{0.1, 0.2}}
		store := &fakeStore{snippets: []model.KnowledgeSnippet{snippet}}
		svc := service.NewKnowledgeService(embedder, store)

		got := svc.RetrieveSnippets(context.Background(), model.GoalGain, "vegan", nil, 3)
		assert.Equal(t, []model.KnowledgeSnippet{snippet}, got)
		assert.Equal(t, 3, store.topK)
	})

	t.Run("defaults topK when non-positive", func(t *testing.T) {
		embedder := &fakeEmbedder{vec: []float32{0.1}}
		store := &fakeStore{}
		svc := service.NewKnowledgeService(embedder, store)

		svc.RetrieveSnippets(context.Background(), model.GoalLose, "", nil, 0)
		assert.Equal(t, service.DefaultTopK, store.topK)
	})

	t.Run("degrades to empty on embedding failure", func(t *testing.T) {
		embedder := &fakeEmbedder{err: errors.New("api down")}
		store := &fakeStore{snippets: []model.KnowledgeSnippet{snippet}}
		svc := service.NewKnowledgeService(embedder, store)

		got := svc.RetrieveSnippets(context.Background(), model.GoalLose, "", nil, 3)
		assert.Empty(t, got)
	})

	t.Run("degrades to empty on store failure", func(t *testing.T) {
		embedder := &fakeEmbedder{vec: []float32{0.1}}
		store := &fakeStore{err: errors.New("connection refused")}
		svc := service.NewKnowledgeService(embedder, store)

		got := svc.RetrieveSnippets(context.Background(), model.GoalLose, "", nil, 3)
		assert.Empty(t, got)
	})
}

func TestBuildSearchQuery(t *testing.T) {
	t.Run("weight loss keywords", func(t *testing.T) {
		query := service.BuildSearchQuery(model.GoalLose, "", nil)
		assert.Equal(t, "nutrition plan for lose. Key topics: weight loss, fat burning, calorie deficit.", query)
	})

	t.Run("muscle gain keywords", func(t *testing.T) {
		query := service.BuildSearchQuery(model.GoalGain, "", nil)
		assert.Contains(t, query, "muscle gain, weight gain, calorie surplus, protein")
	})

	t.Run("maintenance is the default", func(t *testing.T) {
		query := service.BuildSearchQuery("whatever", "", nil)
		assert.Contains(t, query, "weight maintenance, balanced diet, healthy eating")
	})

	t.Run("appends diet and allergies", func(t *testing.T) {
		query := service.BuildSearchQuery(model.GoalGain, "vegan", []string{"peanut", "shellfish"})
		assert.Contains(t, query, "vegan")
		assert.Contains(t, query, "peanut shellfish")
	})
}

package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/model"
)

// DefaultTopK is the number of knowledge snippets retrieved per run.
const DefaultTopK = 3

const retrievalTimeout = 10 * time.Second

// KnowledgeService retrieves research snippets relevant to a user's goal
// and diet by semantic similarity. Retrieval is best-effort: any embedding
// or store failure degrades to an empty result, never an error, so the
// pipeline can proceed without research augmentation.
type KnowledgeService struct {
	embeddings EmbeddingServiceInterface
	store      KnowledgeStoreInterface
}

// NewKnowledgeService creates a new KnowledgeService instance.
func NewKnowledgeService(embeddings EmbeddingServiceInterface, store KnowledgeStoreInterface) *KnowledgeService {
	return &KnowledgeService{
		embeddings: embeddings,
		store:      store,
	}
}

// RetrieveSnippets embeds a search query built from the user's goal, diet
// and allergies, and returns up to topK matching snippets. Never returns
// an error: failures are logged and yield an empty slice.
func (s *KnowledgeService) RetrieveSnippets(ctx context.Context, goal, diet string, allergies []string, topK int) []model.KnowledgeSnippet {
	if topK <= 0 {
		topK = DefaultTopK
	}

	query := BuildSearchQuery(goal, diet, allergies)

	ctx, cancel := context.WithTimeout(ctx, retrievalTimeout)
	defer cancel()

	vec, err := s.embeddings.Embed(ctx, query)
	if err != nil {
		log.Printf("knowledge retrieval degraded, embedding failed: %v", err)
		return nil
	}

	snippets, err := s.store.Search(ctx, vec, topK)
	if err != nil {
		log.Printf("knowledge retrieval degraded, search failed: %v", err)
		return nil
	}

	return snippets
}

// BuildSearchQuery assembles the natural-language query that gets embedded
// and compared against stored article embeddings.
func BuildSearchQuery(goal, diet string, allergies []string) string {
	var goalKeywords string
	switch goal {
	case model.GoalLose:
		goalKeywords = "weight loss, fat burning, calorie deficit"
	case model.GoalGain:
		goalKeywords = "muscle gain, weight gain, calorie surplus, protein"
	default:
		goalKeywords = "weight maintenance, balanced diet, healthy eating"
	}

	query := fmt.Sprintf("nutrition plan for %s. Key topics: %s.", goal, goalKeywords)
	if diet != "" {
		query += " " + diet
	}
	if len(allergies) > 0 {
		query += " " + strings.Join(allergies, " ")
	}
	return query
}

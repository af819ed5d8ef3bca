package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pgvector/pgvector-go"

	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/config"
	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/database"
	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/model"
	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/service"
)

const (
	wikipediaSummaryURL = "https://en.wikipedia.org/api/rest_v1/page/summary/%s"
	userAgent           = "ai-powered-fitness-seeder/1.0 (nutrition knowledge base)"
	// Wikipedia asks clients to pace their requests.
	requestDelay = 100 * time.Millisecond
)

type seedTopic struct {
	Page     string
	Category string
}

var topics = []seedTopic{
	{"Protein_(nutrient)", "macronutrients"},
	{"Carbohydrate", "macronutrients"},
	{"Dietary_fiber", "macronutrients"},
	{"Essential_fatty_acid", "macronutrients"},
	{"Macronutrient", "macronutrients"},
	{"Micronutrient", "micronutrients"},
	{"Vitamin_D", "micronutrients"},
	{"Calorie_restriction", "weight management"},
	{"Intermittent_fasting", "weight management"},
	{"Body_mass_index", "weight management"},
	{"Basal_metabolic_rate", "weight management"},
	{"Ketogenic_diet", "diets"},
	{"Mediterranean_diet", "diets"},
	{"Veganism", "diets"},
	{"Sports_nutrition", "fitness"},
	{"Muscle_hypertrophy", "fitness"},
	{"Hydration", "fitness"},
}

type pageSummary struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	embeddings, err := service.NewEmbeddingService(cfg.OpenAIAPIKey)
	if err != nil {
		log.Fatalf("Failed to create embedding service: %v", err)
	}
	store := service.NewKnowledgeStore(db)

	client := &http.Client{Timeout: 30 * time.Second}
	ctx := context.Background()

	seeded := 0
	for _, topic := range topics {
		summary, err := fetchSummary(ctx, client, topic.Page)
		if err != nil {
			log.Printf("Skipping %s: %v", topic.Page, err)
			continue
		}
		if summary.Extract == "" {
			log.Printf("Skipping %s: empty extract", topic.Page)
			continue
		}

		embedding, err := embeddings.Embed(ctx, summary.Title+"\n\n"+summary.Extract)
		if err != nil {
			log.Fatalf("Failed to embed %s: %v", topic.Page, err)
		}

		article := &model.NutritionArticle{
			Slug:      strings.ToLower(topic.Page),
			Title:     summary.Title,
			Content:   summary.Extract,
			Category:  topic.Category,
			Source:    "Wikipedia",
			URL:       summary.ContentURLs.Desktop.Page,
			Embedding: pgvector.NewVector(embedding),
		}
		if err := store.Upsert(ctx, article); err != nil {
			log.Fatalf("Failed to store %s: %v", topic.Page, err)
		}

		seeded++
		log.Printf("Seeded %s", summary.Title)
		time.Sleep(requestDelay)
	}

	count, err := store.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count articles: %v", err)
	}
	log.Printf("Done: seeded %d topics, %d articles in store", seeded, count)
}

func fetchSummary(ctx context.Context, client *http.Client, page string) (*pageSummary, error) {
	url := fmt.Sprintf(wikipediaSummaryURL, page)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var summary pageSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

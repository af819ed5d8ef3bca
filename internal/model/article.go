package model

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
)

// NutritionArticle is a curated knowledge-base entry stored with its
// embedding for similarity search. Seeded by cmd/seed_knowledge.
type NutritionArticle struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Slug      string          `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Title     string          `gorm:"size:255;not null" json:"title"`
	Content   string          `gorm:"type:text" json:"content"`
	Category  string          `gorm:"size:50" json:"category"`
	Source    string          `gorm:"size:50" json:"source"`
	URL       string          `gorm:"size:255" json:"url"`
	Embedding pgvector.Vector `gorm:"type:vector(1024)" json:"-"`
}

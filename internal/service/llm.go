package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const generationModel = "gemini-2.5-flash-lite"

// GenerationConfig holds the sampling parameters for one generation call.
type GenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
}

// DefaultGenerationConfig is the fixed sampling configuration used for
// nutrition plans.
var DefaultGenerationConfig = GenerationConfig{
	MaxOutputTokens: 8000,
	Temperature:     0.7,
	TopP:            0.9,
}

// LLMService handles interactions with the Gemini API.
type LLMService struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewLLMService creates a new LLMService instance.
func NewLLMService(apiKey string) (*LLMService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY must be set")
	}

	apiURL := os.Getenv("GEMINI_API_URL")
	if apiURL == "" {
		apiURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	return &LLMService{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: 2 * time.Minute},
	}, nil
}

// Part is one piece of content in a generation request or response.
type Part struct {
	Text string `json:"text"`
}

// Content is a block of parts in a generation request or response.
type Content struct {
	Parts []Part `json:"parts"`
}

// Request represents a request to the Gemini generateContent API.
type Request struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

// Generate sends the prompt to the generation service and returns the
// generated text verbatim. Unlike knowledge and recipe retrieval there is
// no fallback here: every error propagates to the caller.
func (s *LLMService) Generate(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	reqBody := Request{
		Contents:         []Content{{Parts: []Part{{Text: prompt}}}},
		GenerationConfig: cfg,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", s.apiURL, generationModel)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("generation API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Candidates []struct {
			Content Content `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in API response")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

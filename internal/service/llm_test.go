package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArjunMamidala/AI-Powered-Fitness/backend/internal/service"
)

func newLLM(t *testing.T, handler http.HandlerFunc) *service.LLMService {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	t.Setenv("GEMINI_API_URL", server.URL)

	svc, err := service.NewLLMService("test-key")
	require.NoError(t, err)
	return svc
}

func TestNewLLMService(t *testing.T) {
	t.Run("requires an API key", func(t *testing.T) {
		_, err := service.NewLLMService("")
		assert.Error(t, err)
	})
}

func TestGenerate(t *testing.T) {
	t.Run("sends prompt and config, returns candidate text", func(t *testing.T) {
		var gotReq service.Request
		var gotAPIKey string
		svc := newLLM(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models/gemini-2.5-flash-lite:generateContent", r.URL.Path)
			gotAPIKey = r.Header.Get("x-goog-api-key")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"# Your Personalized Nutrition Plan"}]}}]}`))
		})

		text, err := svc.Generate(context.Background(), "build a plan", service.DefaultGenerationConfig)
		require.NoError(t, err)
		assert.Equal(t, "# Your Personalized Nutrition Plan", text)

		assert.Equal(t, "test-key", gotAPIKey)
		require.Len(t, gotReq.Contents, 1)
		require.Len(t, gotReq.Contents[0].Parts, 1)
		assert.Equal(t, "build a plan", gotReq.Contents[0].Parts[0].Text)
		assert.Equal(t, 8000, gotReq.GenerationConfig.MaxOutputTokens)
		assert.Equal(t, 0.7, gotReq.GenerationConfig.Temperature)
		assert.Equal(t, 0.9, gotReq.GenerationConfig.TopP)
	})

	t.Run("propagates HTTP errors", func(t *testing.T) {
		svc := newLLM(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := svc.Generate(context.Background(), "prompt", service.DefaultGenerationConfig)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})

	t.Run("errors on empty candidate list", func(t *testing.T) {
		svc := newLLM(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		})

		_, err := svc.Generate(context.Background(), "prompt", service.DefaultGenerationConfig)
		assert.Error(t, err)
	})
}

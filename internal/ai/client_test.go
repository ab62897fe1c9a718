package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"wolf-ai/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateResponseNoCredentialsFallsBack(t *testing.T) {
	c := NewClient(Config{}, zap.NewNop())
	model := testModel()

	resp := c.GenerateResponse(context.Background(), "مرحبا", model)

	assert.NotEmpty(t, resp.Response)
	assert.GreaterOrEqual(t, resp.ResponseTime, 0.0)
	assert.Contains(t, genericPool(), resp.Response)
}

func TestGenerateResponseGroqSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"1","choices":[{"index":0,"message":{"role":"assistant","content":"أهلاً بك"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{GroqKey: "test-key", GroqBaseURL: srv.URL}, zap.NewNop())
	resp := c.GenerateResponse(context.Background(), "مرحبا", testModel())

	assert.Equal(t, "أهلاً بك", resp.Response)
	assert.GreaterOrEqual(t, resp.ResponseTime, 0.0)
}

func TestGenerateResponseProviderErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream on fire", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Config{GroqKey: "test-key", GroqBaseURL: srv.URL}, zap.NewNop())
	model := testModel()
	resp := c.GenerateResponse(context.Background(), "ما هو الذكاء الاصطناعي؟", model)

	// Masked failure: canned text, never an error surface.
	assert.NotEmpty(t, resp.Response)
	assert.Contains(t, aiPool(model), resp.Response)
}

func TestGenerateResponseMistralRoutesToXAI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"1","choices":[{"index":0,"message":{"role":"assistant","content":"من xAI"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{XAIKey: "test-key", XAIBaseURL: srv.URL}, zap.NewNop())
	model := testModel()
	model.Type = string(models.TypeMistral)

	resp := c.GenerateResponse(context.Background(), "مرحبا", model)
	assert.Equal(t, "من xAI", resp.Response)
}

func TestGenerateResponseKRKRPlaceholderUsesCannedText(t *testing.T) {
	c := NewClient(Config{KRKRKey: "krkr-key"}, zap.NewNop())
	model := testModel()
	model.Type = string(models.TypeCodeLlama)

	resp := c.GenerateResponse(context.Background(), "مرحبا", model)
	assert.Contains(t, genericPool(), resp.Response)
}

func TestGenerateResponseUnmatchedTypeWithOnlyGroqKeyFallsBack(t *testing.T) {
	// llama2 is the only family Groq serves; a gpt model with only a Groq
	// key configured must fall through to the canned generator.
	c := NewClient(Config{GroqKey: "test-key"}, zap.NewNop())
	model := testModel()
	model.Type = string(models.TypeGPT)

	resp := c.GenerateResponse(context.Background(), "أخبرني عن تدريب النماذج", model)
	assert.Contains(t, aiPool(model), resp.Response)
}

package integration

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"sales-assistant-bot/internal/entity"
	"sales-assistant-bot/internal/pkg/logger"
	"sales-assistant-bot/pkg/llm/ollama"
	"sales-assistant-bot/pkg/rag/catalog"
	ragcontext "sales-assistant-bot/pkg/rag/context"
	"sales-assistant-bot/pkg/rag/response"

	"github.com/stretchr/testify/assert"
)

// Runs against a local Ollama server. Set OLLAMA_INTEGRATION=1 to enable.
func TestGenerateAnswerWithOllama(t *testing.T) {
	if os.Getenv("OLLAMA_INTEGRATION") == "" {
		t.Skip("Skipping integration test: OLLAMA_INTEGRATION not set")
	}

	baseURL := os.Getenv("OLLAMA_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gemma:2b"
	}

	provider := ollama.NewOllamaProvider(baseURL, model, 2*time.Minute)
	generator := response.NewGenerator(provider, 2*time.Minute, logger.NewNopLogger())

	comp := ragcontext.Compose(catalog.Result{
		Success:  true,
		Products: []*entity.Product{{Code: "LP-001", Name: "Laptop Lenovo IdeaPad 3", Price: 2499, Stock: 8, Category: "laptop"}},
	}, nil)

	answer := generator.Generate(context.Background(), "¿Qué laptops tienen?", comp)

	assert.True(t, strings.HasPrefix(answer.Text, response.AnswerPrefix), answer.Text)
	t.Logf("Answer: %s", answer.Text)
}

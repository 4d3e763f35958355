package factory

import (
	"testing"

	"sales-assistant-bot/pkg/llm/gemini"
	"sales-assistant-bot/pkg/llm/ollama"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLLMProvider(t *testing.T) {
	p, err := NewLLMProvider(Config{Provider: "gemini", APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &gemini.GeminiProvider{}, p)

	p, err = NewLLMProvider(Config{Provider: "ollama", Model: "llama3"})
	require.NoError(t, err)
	assert.IsType(t, &ollama.OllamaProvider{}, p)

	_, err = NewLLMProvider(Config{Provider: "gemini"})
	assert.Error(t, err)

	_, err = NewLLMProvider(Config{Provider: "huggingface"})
	assert.Error(t, err)
}

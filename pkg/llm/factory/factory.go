package factory

import (
	"fmt"
	"time"

	"sales-assistant-bot/pkg/llm"
	"sales-assistant-bot/pkg/llm/gemini"
	"sales-assistant-bot/pkg/llm/ollama"
)

type Config struct {
	Provider string // "gemini" or "ollama"
	Model    string
	BaseURL  string
	APIKey   string
	Timeout  time.Duration
}

func NewLLMProvider(cfg Config) (llm.LLMProvider, error) {
	switch cfg.Provider {
	case "", "gemini":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("gemini provider requires an API key")
		}
		return gemini.NewGeminiProvider(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Timeout), nil
	case "ollama":
		return ollama.NewOllamaProvider(cfg.BaseURL, cfg.Model, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

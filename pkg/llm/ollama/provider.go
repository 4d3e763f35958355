package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sales-assistant-bot/pkg/llm"
)

const DefaultBaseURL = "http://localhost:11434"

type OllamaProvider struct {
	BaseURL   string
	ModelName string
	Client    *http.Client
}

var _ llm.LLMProvider = &OllamaProvider{}

func NewOllamaProvider(baseURL, modelName string, timeout time.Duration) *OllamaProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &OllamaProvider{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		ModelName: modelName,
		Client:    &http.Client{Timeout: timeout},
	}
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Options  *ollamaOptions  `json:"options,omitempty"`
}

type ollamaChatResponse struct {
	Message *ollamaMessage `json:"message"`
	Done    bool           `json:"done"`
}

type ollamaGenerateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options *ollamaOptions `json:"options,omitempty"`
}

type ollamaGenerateResponse struct {
	Response *string `json:"response"`
	Done     bool    `json:"done"`
}

func (o *OllamaProvider) resolve(opts []llm.Option) (string, *ollamaOptions) {
	options := llm.ApplyOptions(llm.Options{Temperature: 0.7}, opts...)
	model := o.ModelName
	if options.Model != "" {
		model = options.Model
	}
	return model, &ollamaOptions{Temperature: options.Temperature, NumPredict: options.MaxTokens}
}

func (o *OllamaProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	model, options := o.resolve(opts)

	messages := make([]ollamaMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = llm.RoleAssistant
		}
		messages[i] = ollamaMessage{Role: role, Content: msg.Content}
	}

	var resp ollamaChatResponse
	if err := o.post(ctx, "/api/chat", ollamaChatRequest{
		Model:    model,
		Messages: messages,
		Options:  options,
	}, &resp); err != nil {
		return "", err
	}
	if resp.Message == nil {
		return "", fmt.Errorf("%w: missing message", llm.ErrMalformedResponse)
	}
	return resp.Message.Content, nil
}

func (o *OllamaProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	model, options := o.resolve(opts)

	var resp ollamaGenerateResponse
	if err := o.post(ctx, "/api/generate", ollamaGenerateRequest{
		Model:   model,
		Prompt:  prompt,
		Options: options,
	}, &resp); err != nil {
		return "", err
	}
	if resp.Response == nil {
		return "", fmt.Errorf("%w: missing response", llm.ErrMalformedResponse)
	}
	return *resp.Response, nil
}

func (o *OllamaProvider) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.BaseURL+path, bytes.NewReader(payloadBytes))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.Client.Do(req)
	if err != nil {
		return fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &llm.StatusError{Provider: "ollama", StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", llm.ErrMalformedResponse, err)
	}
	return nil
}

package llm

import (
	"context"
	"errors"
	"fmt"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string
	Content string
}

// Options tune a single completion. Zero values leave the provider default.
type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string
}

type Option func(*Options)

func WithTemperature(temp float64) Option { return func(o *Options) { o.Temperature = temp } }

func WithMaxTokens(n int) Option { return func(o *Options) { o.MaxTokens = n } }

func WithModel(model string) Option { return func(o *Options) { o.Model = model } }

// ApplyOptions resolves opts over the given defaults.
func ApplyOptions(defaults Options, opts ...Option) Options {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}

// LLMProvider is implemented by every completion backend. A non-200 answer
// comes back as *StatusError; an unreadable 200 body wraps ErrMalformedResponse.
type LLMProvider interface {
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}

var ErrMalformedResponse = errors.New("malformed llm response")

type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s error: status %d, body: %s", e.Provider, e.StatusCode, e.Body)
}

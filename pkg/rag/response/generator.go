package response

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sales-assistant-bot/internal/pkg/logger"
	"sales-assistant-bot/pkg/llm"
	ragcontext "sales-assistant-bot/pkg/rag/context"
	"sales-assistant-bot/pkg/rag/prompt"
	"sales-assistant-bot/pkg/store"
)

const DefaultTimeout = 30 * time.Second

// Answer is the final reply text plus the images to send after it.
type Answer struct {
	Text  string
	Media []store.MediaRef
}

type Generator struct {
	llmProvider llm.LLMProvider
	timeout     time.Duration
	logger      logger.ILogger
}

func NewGenerator(llmProvider llm.LLMProvider, timeout time.Duration, log logger.ILogger) *Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Generator{
		llmProvider: llmProvider,
		timeout:     timeout,
		logger:      log,
	}
}

// Generate asks the model for an answer grounded on comp. It fails open:
// any provider problem becomes a user-facing message with no media.
func (g *Generator) Generate(ctx context.Context, query string, comp ragcontext.Composition) Answer {
	if g.llmProvider == nil {
		g.logger.Error("AnswerGenerator", "No LLM provider configured", nil)
		return Answer{Text: MsgUnavailable}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.llmProvider.Generate(ctx, prompt.Build(query, comp))
	if err != nil {
		return Answer{Text: g.classify(err)}
	}

	return Answer{
		Text:  AnswerPrefix + text,
		Media: comp.Media,
	}
}

func (g *Generator) classify(err error) string {
	var statusErr *llm.StatusError
	switch {
	case errors.As(err, &statusErr):
		g.logger.Error("AnswerGenerator", "LLM returned an error status", map[string]interface{}{
			"status": statusErr.StatusCode,
			"body":   statusErr.Body,
		})
		return fmt.Sprintf(MsgStatusTemplate, statusErr.StatusCode)
	case errors.Is(err, llm.ErrMalformedResponse):
		g.logger.Error("AnswerGenerator", "Unexpected LLM response format", map[string]interface{}{
			"error": err.Error(),
		})
		return MsgMalformed
	default:
		g.logger.Error("AnswerGenerator", "LLM request failed", map[string]interface{}{
			"error": err.Error(),
		})
		return MsgUnavailable
	}
}

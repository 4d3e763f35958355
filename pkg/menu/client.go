package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"sales-assistant-bot/internal/pkg/logger"
)

const DefaultTimeout = 5 * time.Second

// Client fetches menu content from the chat API and falls back to the
// built-in content when the API is down or answers something unusable.
type Client struct {
	url      string
	http     *http.Client
	fallback Content
	logger   logger.ILogger
}

func NewClient(url string, timeout time.Duration, log logger.ILogger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:      url,
		http:     &http.Client{Timeout: timeout},
		fallback: Default(),
		logger:   log,
	}
}

func (c *Client) Content(ctx context.Context) Content {
	if c.url == "" {
		return c.fallback
	}

	content, err := c.fetch(ctx)
	if err != nil {
		c.logger.Debug("MenuClient", "Using built-in menu", map[string]interface{}{
			"url":   c.url,
			"error": err.Error(),
		})
		return c.fallback
	}
	return content
}

func (c *Client) fetch(ctx context.Context) (Content, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Content{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Content{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Content{}, fmt.Errorf("menu api status %d", resp.StatusCode)
	}

	var content Content
	if err := json.NewDecoder(resp.Body).Decode(&content); err != nil {
		return Content{}, fmt.Errorf("decode menu: %w", err)
	}
	if !content.valid() {
		return Content{}, fmt.Errorf("menu api returned no welcome text or options")
	}
	return content, nil
}

package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"sales-assistant-bot/internal/pkg/logger"
	internalWS "sales-assistant-bot/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSocketHandler_RejectsBadHandshakes(t *testing.T) {
	hub := internalWS.NewHub(nil, nil, logger.NewNopLogger())
	h := NewChatSocketHandler(context.Background(), hub, logger.NewNopLogger())

	app := fiber.New()
	h.RegisterRoutes(app)

	cases := []struct {
		name   string
		path   string
		status int
	}{
		{"missing user", "/ws/chat", fiber.StatusBadRequest},
		{"user id too long", "/ws/chat?user_id=" + strings.Repeat("x", 65), fiber.StatusBadRequest},
		{"plain http", "/ws/chat?user_id=u1", fiber.StatusUpgradeRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

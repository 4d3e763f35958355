package handler

import (
	"context"
	"strings"

	"sales-assistant-bot/internal/pkg/logger"
	"sales-assistant-bot/internal/pkg/serverutils"
	internalWS "sales-assistant-bot/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

const maxUserIDLength = 64

// ChatSocketHandler upgrades browser chat connections and hands them to the hub.
type ChatSocketHandler struct {
	ctx    context.Context
	hub    *internalWS.Hub
	logger logger.ILogger
}

// NewChatSocketHandler ties every connection to ctx; cancelling it closes
// the read loops.
func NewChatSocketHandler(ctx context.Context, hub *internalWS.Hub, log logger.ILogger) *ChatSocketHandler {
	return &ChatSocketHandler{ctx: ctx, hub: hub, logger: log}
}

func (h *ChatSocketHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws/chat", h.ServeWs)
}

func (h *ChatSocketHandler) ServeWs(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" || len(userID) > maxUserIDLength {
		return c.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Query parameter user_id is required"))
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("ChatSocket", "Starting WebSocket session", map[string]interface{}{"user_id": userID})
		internalWS.ServeWs(h.ctx, h.hub, conn, userID)
		h.logger.Info("ChatSocket", "WebSocket session ended", map[string]interface{}{"user_id": userID})
	})(c)
}

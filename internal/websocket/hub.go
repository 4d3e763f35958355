package websocket

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"sales-assistant-bot/internal/pkg/logger"
	"sales-assistant-bot/pkg/messenger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "bot_replies"

// InboundSink receives the chat messages users type in the browser.
type InboundSink interface {
	Push(ctx context.Context, msg messenger.Message) error
}

// Frame is the JSON shape of every outgoing websocket message.
type Frame struct {
	Type string `json:"type"` // "text" | "media"
	Text string `json:"text,omitempty"`
	URL  string `json:"url,omitempty"`
	Name string `json:"name,omitempty"`
}

type inboundFrame struct {
	Text string `json:"text"`
}

type Hub struct {
	// UserID -> connections (one user can have several tabs open)
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis fan-out so replies reach users connected to other instances
	rdb        *redis.Client
	instanceID string

	inbox  InboundSink
	logger logger.ILogger
}

func NewHub(inbox InboundSink, rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		inbox:      inbox,
		logger:     log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clients[client.UserID]
	for i, c := range clients {
		if c == client {
			h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[client.UserID]) == 0 {
		delete(h.clients, client.UserID)
		h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"user_id": client.UserID})
	}
}

// Connected reports whether the user has at least one local connection.
func (h *Hub) Connected(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID]) > 0
}

// Send delivers a frame to every connection of userID, here and, through
// Redis, on other instances.
func (h *Hub) Send(ctx context.Context, userID string, frame Frame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}

	h.deliverLocal(userID, data)

	if h.rdb != nil {
		payload, _ := json.Marshal(map[string]interface{}{
			"origin":         h.instanceID,
			"target_user_id": userID,
			"message":        json.RawMessage(data),
		})
		if err := h.rdb.Publish(ctx, clusterChannel, payload).Err(); err != nil {
			h.logger.Warn("Hub", "Redis publish failed", map[string]interface{}{"error": err.Error()})
		}
	}
	return nil
}

func (h *Hub) deliverLocal(userID string, data []byte) {
	// Held while sending so removeClient cannot close a channel mid-send.
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients[userID] {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping connection", map[string]interface{}{"user_id": userID})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

// handleInbound turns a websocket frame into an inbox message. Frames may be
// JSON ({"text": "..."}) or plain text.
func (h *Hub) handleInbound(ctx context.Context, client *Client, raw []byte) {
	text := strings.TrimSpace(string(raw))
	var frame inboundFrame
	if err := json.Unmarshal(raw, &frame); err == nil {
		text = strings.TrimSpace(frame.Text)
	}
	if text == "" {
		return
	}

	if err := h.inbox.Push(ctx, messenger.Message{UserID: client.UserID, Text: text}); err != nil {
		h.logger.Error("Hub", "Failed to queue inbound message", map[string]interface{}{
			"user_id": client.UserID,
			"error":   err.Error(),
		})
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			Origin       string          `json:"origin"`
			TargetUserID string          `json:"target_user_id"`
			Message      json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Redis msg parse error", map[string]interface{}{"error": err.Error()})
			continue
		}
		// Already delivered locally by Send.
		if payload.Origin == h.instanceID {
			continue
		}
		h.deliverLocal(payload.TargetUserID, payload.Message)
	}
}

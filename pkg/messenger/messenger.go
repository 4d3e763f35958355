package messenger

import (
	"context"
	"errors"
	"time"

	"sales-assistant-bot/pkg/store"
)

// ErrNoMessage is returned by ReadLatest when nothing is waiting.
var ErrNoMessage = errors.New("no pending message")

// Message is one inbound chat message.
type Message struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Text       string    `json:"text"`
	ReceivedAt time.Time `json:"received_at"`
}

// Messenger is the chat channel the bot talks through.
type Messenger interface {
	// ReadLatest returns the next unread inbound message, or ErrNoMessage.
	ReadLatest(ctx context.Context) (*Message, error)
	SendText(ctx context.Context, userID, text string) error
	SendMedia(ctx context.Context, userID string, media store.MediaRef) error
}

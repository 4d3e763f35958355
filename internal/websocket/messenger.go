package websocket

import (
	"context"

	"sales-assistant-bot/pkg/messenger"
	"sales-assistant-bot/pkg/store"
)

// Messenger is the browser chat channel: it reads from the shared inbox and
// replies through the hub.
type Messenger struct {
	hub   *Hub
	inbox *messenger.Inbox
}

func NewMessenger(hub *Hub, inbox *messenger.Inbox) *Messenger {
	return &Messenger{hub: hub, inbox: inbox}
}

var _ messenger.Messenger = (*Messenger)(nil)

func (m *Messenger) ReadLatest(ctx context.Context) (*messenger.Message, error) {
	return m.inbox.ReadLatest(ctx)
}

func (m *Messenger) SendText(ctx context.Context, userID, text string) error {
	return m.hub.Send(ctx, userID, Frame{Type: "text", Text: text})
}

func (m *Messenger) SendMedia(ctx context.Context, userID string, media store.MediaRef) error {
	return m.hub.Send(ctx, userID, Frame{Type: "media", URL: media.URL, Name: media.Name})
}

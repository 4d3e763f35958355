package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"sales-assistant-bot/internal/pkg/logger"
	"sales-assistant-bot/pkg/messenger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sinkRecorder struct {
	mu   sync.Mutex
	msgs []messenger.Message
}

func (s *sinkRecorder) Push(_ context.Context, msg messenger.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
	return nil
}

func startHub(t *testing.T, sink InboundSink) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub(sink, nil, logger.NewNopLogger())
	go hub.Run(ctx)
	return hub
}

func TestHub_SendReachesEveryConnectionOfUser(t *testing.T) {
	hub := startHub(t, &sinkRecorder{})

	tab1 := &Client{Hub: hub, UserID: "u1", Send: make(chan []byte, 4)}
	tab2 := &Client{Hub: hub, UserID: "u1", Send: make(chan []byte, 4)}
	other := &Client{Hub: hub, UserID: "u2", Send: make(chan []byte, 4)}
	hub.register <- tab1
	hub.register <- tab2
	hub.register <- other
	require.Eventually(t, func() bool { return hub.Connected("u1") && hub.Connected("u2") }, time.Second, 5*time.Millisecond)

	require.NoError(t, hub.Send(context.Background(), "u1", Frame{Type: "text", Text: "hola"}))

	for _, c := range []*Client{tab1, tab2} {
		var frame Frame
		require.NoError(t, json.Unmarshal(<-c.Send, &frame))
		assert.Equal(t, Frame{Type: "text", Text: "hola"}, frame)
	}
	assert.Empty(t, other.Send)
}

func TestHub_Unregister(t *testing.T) {
	hub := startHub(t, &sinkRecorder{})

	c := &Client{Hub: hub, UserID: "u1", Send: make(chan []byte, 1)}
	hub.register <- c
	require.Eventually(t, func() bool { return hub.Connected("u1") }, time.Second, 5*time.Millisecond)

	hub.unregister <- c
	require.Eventually(t, func() bool { return !hub.Connected("u1") }, time.Second, 5*time.Millisecond)

	_, open := <-c.Send
	assert.False(t, open)
}

func TestHub_HandleInbound(t *testing.T) {
	sink := &sinkRecorder{}
	hub := NewHub(sink, nil, logger.NewNopLogger())
	client := &Client{Hub: hub, UserID: "u7"}

	hub.handleInbound(context.Background(), client, []byte(`{"text":" hola "}`))
	hub.handleInbound(context.Background(), client, []byte("4"))
	hub.handleInbound(context.Background(), client, []byte("   "))

	require.Len(t, sink.msgs, 2)
	assert.Equal(t, messenger.Message{UserID: "u7", Text: "hola"}, sink.msgs[0])
	assert.Equal(t, "4", sink.msgs[1].Text)
}

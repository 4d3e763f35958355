package messenger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"sales-assistant-bot/internal/pkg/logger"
	"sales-assistant-bot/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInbox(t *testing.T) *Inbox {
	t.Helper()
	inbox, err := NewInbox(context.Background(), logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = inbox.Close() })
	return inbox
}

func TestInbox_PushAndRead(t *testing.T) {
	ctx := context.Background()
	inbox := newInbox(t)

	pushed := make(chan error, 1)
	go func() {
		if err := inbox.Push(ctx, Message{UserID: "u1", Text: "hola"}); err != nil {
			pushed <- err
			return
		}
		pushed <- inbox.Push(ctx, Message{UserID: "u1", Text: "4"})
	}()

	var got []*Message
	require.Eventually(t, func() bool {
		msg, err := inbox.ReadLatest(ctx)
		if err == nil {
			got = append(got, msg)
		}
		return len(got) == 2
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, <-pushed)
	assert.Equal(t, "hola", got[0].Text)
	assert.Equal(t, "4", got[1].Text)
	assert.NotEmpty(t, got[0].ID)
	assert.False(t, got[0].ReceivedAt.IsZero())
}

func TestInbox_PushReturnsBeforeWorkerReads(t *testing.T) {
	ctx := context.Background()
	inbox := newInbox(t)

	pushed := make(chan error, 1)
	go func() {
		for _, text := range []string{"laptop menos de 1000", "1", "laptop menos de 1000"} {
			if err := inbox.Push(ctx, Message{UserID: "u1", Text: text}); err != nil {
				pushed <- err
				return
			}
		}
		pushed <- nil
	}()

	select {
	case err := <-pushed:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Push blocked with nobody reading")
	}

	var got []string
	require.Eventually(t, func() bool {
		if msg, err := inbox.ReadLatest(ctx); err == nil {
			got = append(got, msg.Text)
		}
		return len(got) == 3
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"laptop menos de 1000", "1", "laptop menos de 1000"}, got)
}

func TestInbox_PushHonoursContextAndClose(t *testing.T) {
	inbox := newInbox(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, inbox.Push(ctx, Message{UserID: "u1", Text: "hola"}), context.Canceled)

	require.NoError(t, inbox.Close())
	assert.ErrorIs(t, inbox.Push(context.Background(), Message{UserID: "u1", Text: "hola"}), ErrInboxClosed)
}

func TestInbox_EmptyReturnsErrNoMessage(t *testing.T) {
	inbox := newInbox(t)

	_, err := inbox.ReadLatest(context.Background())
	assert.True(t, errors.Is(err, ErrNoMessage))
}

func TestInbox_ContextCancelled(t *testing.T) {
	inbox := newInbox(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := inbox.ReadLatest(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConsole_RoundTrip(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	console := NewConsole(newInbox(t), strings.NewReader("hola\n\n4\n"), &out, logger.NewNopLogger())
	console.Start(ctx)

	var got []string
	require.Eventually(t, func() bool {
		msg, err := console.ReadLatest(ctx)
		if err == nil {
			assert.Equal(t, ConsoleUserID, msg.UserID)
			got = append(got, msg.Text)
		}
		return len(got) == 2
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"hola", "4"}, got)

	require.NoError(t, console.SendText(ctx, ConsoleUserID, "menú"))
	require.NoError(t, console.SendMedia(ctx, ConsoleUserID, store.MediaRef{URL: "https://cdn/a.jpg", Name: "A"}))
	assert.Contains(t, out.String(), "menú")
	assert.Contains(t, out.String(), "https://cdn/a.jpg")
}

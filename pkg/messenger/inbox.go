package messenger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"sales-assistant-bot/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	InboundTopic       = "bot.inbound"
	defaultReadTimeout = 100 * time.Millisecond
	queueSize          = 256
)

var ErrInboxClosed = errors.New("inbox closed")

// Inbox queues inbound messages from every channel (console, websocket,
// webhook) for the single bot worker. Producers return once a message is
// queued; one forwarder publishes them in arrival order.
type Inbox struct {
	pubSub      *gochannel.GoChannel
	queue       chan *message.Message
	messages    <-chan *message.Message
	readTimeout time.Duration
	logger      logger.ILogger

	closing   chan struct{}
	closeOnce sync.Once
}

func NewInbox(ctx context.Context, log logger.ILogger) (*Inbox, error) {
	// The forwarder waits for each ack, so the worker sees messages in order.
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer:            queueSize,
			BlockPublishUntilSubscriberAck: true,
		},
		watermill.NopLogger{},
	)

	messages, err := pubSub.Subscribe(ctx, InboundTopic)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe inbox: %w", err)
	}

	i := &Inbox{
		pubSub:      pubSub,
		queue:       make(chan *message.Message, queueSize),
		messages:    messages,
		readTimeout: defaultReadTimeout,
		logger:      log,
		closing:     make(chan struct{}),
	}
	go i.forward(ctx)
	return i, nil
}

// Push enqueues a message without waiting for the worker. It blocks only
// while the queue is full. ID and ReceivedAt are filled in when empty.
func (i *Inbox) Push(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-i.closing:
		return ErrInboxClosed
	default:
	}
	if msg.ID == "" {
		msg.ID = watermill.NewUUID()
	}
	if msg.ReceivedAt.IsZero() {
		msg.ReceivedAt = time.Now()
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	select {
	case i.queue <- message.NewMessage(msg.ID, payload):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-i.closing:
		return ErrInboxClosed
	}
}

func (i *Inbox) forward(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-i.closing:
			return
		case msg := <-i.queue:
			if err := i.pubSub.Publish(InboundTopic, msg); err != nil {
				i.logger.Warn("Inbox", "Failed to publish message", map[string]interface{}{
					"uuid":  msg.UUID,
					"error": err.Error(),
				})
			}
		}
	}
}

// ReadLatest waits briefly for the next queued message.
func (i *Inbox) ReadLatest(ctx context.Context) (*Message, error) {
	timer := time.NewTimer(i.readTimeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
			return nil, ErrNoMessage
		case raw, ok := <-i.messages:
			if !ok {
				return nil, ErrNoMessage
			}
			var msg Message
			err := json.Unmarshal(raw.Payload, &msg)
			raw.Ack()
			if err != nil {
				i.logger.Warn("Inbox", "Dropping undecodable message", map[string]interface{}{
					"uuid":  raw.UUID,
					"error": err.Error(),
				})
				continue
			}
			return &msg, nil
		}
	}
}

func (i *Inbox) Close() error {
	i.closeOnce.Do(func() { close(i.closing) })
	return i.pubSub.Close()
}

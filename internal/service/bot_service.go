package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sales-assistant-bot/internal/pkg/logger"
	"sales-assistant-bot/pkg/conversation"
	"sales-assistant-bot/pkg/messenger"
)

// Lower-cased fragments of our own replies. A channel that reads the whole
// conversation back would otherwise feed the bot its own messages.
var botEchoMarkers = []string{
	"✨ ¡bienvenido",
	"opción no válida",
	"información del producto",
	"📦 *catálogo",
	"🏷️ *ofertas",
	"🚚 *información",
	"🔍 *modo consulta",
}

const loadingPlaceholder = "cargando..."

type ConversationHandler interface {
	Handle(ctx context.Context, userID, text string) []conversation.Reply
}

type BotConfig struct {
	PollInterval time.Duration
	ErrorBackoff time.Duration
	MediaPause   time.Duration
}

func DefaultBotConfig() BotConfig {
	return BotConfig{
		PollInterval: 2 * time.Second,
		ErrorBackoff: 10 * time.Second,
		MediaPause:   time.Second,
	}
}

type IBotService interface {
	Run(ctx context.Context) error
}

type botService struct {
	messenger messenger.Messenger
	handler   ConversationHandler
	config    BotConfig
	logger    logger.ILogger

	// ID of the last message handled per user
	lastProcessed map[string]string
}

func NewBotService(m messenger.Messenger, handler ConversationHandler, config BotConfig, log logger.ILogger) IBotService {
	return &botService{
		messenger:     m,
		handler:       handler,
		config:        config,
		logger:        log,
		lastProcessed: make(map[string]string),
	}
}

// Run polls the messenger until ctx is cancelled. Failures in one iteration
// are logged and followed by a back-off; they never stop the loop.
func (s *botService) Run(ctx context.Context) error {
	s.logger.Info("BotService", "Bot loop started", nil)

	for {
		if ctx.Err() != nil {
			s.logger.Info("BotService", "Bot loop stopped", nil)
			return nil
		}

		handled, err := s.iterate(ctx)
		switch {
		case err != nil && ctx.Err() != nil:
			continue
		case err != nil:
			s.logger.Error("BotService", "Iteration failed", map[string]interface{}{"error": err.Error()})
			sleep(ctx, s.config.ErrorBackoff)
		case !handled:
			sleep(ctx, s.config.PollInterval)
		}
	}
}

func (s *botService) iterate(ctx context.Context) (handled bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in bot iteration: %v", r)
		}
	}()

	msg, err := s.messenger.ReadLatest(ctx)
	if errors.Is(err, messenger.ErrNoMessage) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read message: %w", err)
	}

	if !s.shouldProcess(msg) {
		return true, nil
	}

	s.logger.Info("BotService", "Message received", map[string]interface{}{
		"user_id": msg.UserID,
		"text":    msg.Text,
	})

	replies := s.handler.Handle(ctx, msg.UserID, msg.Text)
	return true, s.deliver(ctx, msg.UserID, replies)
}

// shouldProcess drops redeliveries of the same message ID and text that is
// not the user's. Repeating the same text in a new message is a real turn.
func (s *botService) shouldProcess(msg *messenger.Message) bool {
	if msg.ID != "" {
		if last, seen := s.lastProcessed[msg.UserID]; seen && last == msg.ID {
			s.logger.Debug("BotService", "Message already processed", map[string]interface{}{
				"user_id":    msg.UserID,
				"message_id": msg.ID,
			})
			return false
		}
		s.lastProcessed[msg.UserID] = msg.ID
	}

	lower := strings.ToLower(strings.TrimSpace(msg.Text))
	if lower == "" || lower == loadingPlaceholder {
		return false
	}

	for _, marker := range botEchoMarkers {
		if strings.Contains(lower, marker) {
			s.logger.Debug("BotService", "Skipping bot echo", map[string]interface{}{"user_id": msg.UserID})
			return false
		}
	}
	return true
}

func (s *botService) deliver(ctx context.Context, userID string, replies []conversation.Reply) error {
	for _, reply := range replies {
		if reply.Media == nil {
			if err := s.messenger.SendText(ctx, userID, reply.Text); err != nil {
				return fmt.Errorf("send text: %w", err)
			}
			continue
		}

		sleep(ctx, s.config.MediaPause)
		if err := s.messenger.SendMedia(ctx, userID, *reply.Media); err != nil {
			// One broken image should not hide the rest.
			s.logger.Warn("BotService", "Failed to send media", map[string]interface{}{
				"user_id": userID,
				"url":     reply.Media.URL,
				"error":   err.Error(),
			})
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

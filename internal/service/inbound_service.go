package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"sales-assistant-bot/internal/dto"
	"sales-assistant-bot/pkg/messenger"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

var ErrRateLimited = errors.New("too many messages, slow down")

type MessageSink interface {
	Push(ctx context.Context, msg messenger.Message) error
}

// RateConfig bounds how fast one user may post messages.
type RateConfig struct {
	PerMinute int
	Burst     int
}

type IInboundService interface {
	Receive(ctx context.Context, req *dto.InboundMessageRequest) (*dto.InboundMessageResponse, error)
}

type inboundService struct {
	sink MessageSink
	now  func() time.Time

	limit    rate.Limit
	burst    int
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewInboundService queues webhook messages into sink. A zero PerMinute
// disables rate limiting.
func NewInboundService(sink MessageSink, rc RateConfig) IInboundService {
	limit := rate.Inf
	if rc.PerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(rc.PerMinute))
	}
	burst := rc.Burst
	if burst <= 0 {
		burst = 1
	}
	return &inboundService{
		sink:     sink,
		now:      time.Now,
		limit:    limit,
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (s *inboundService) limiter(userID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.limiters[userID]
	if !ok {
		l = rate.NewLimiter(s.limit, s.burst)
		s.limiters[userID] = l
	}
	return l
}

func (s *inboundService) Receive(ctx context.Context, req *dto.InboundMessageRequest) (*dto.InboundMessageResponse, error) {
	userID := strings.TrimSpace(req.UserID)
	if !s.limiter(userID).AllowN(s.now(), 1) {
		return nil, ErrRateLimited
	}

	msg := messenger.Message{
		ID:         uuid.NewString(),
		UserID:     userID,
		Text:       req.Text,
		ReceivedAt: s.now(),
	}

	if err := s.sink.Push(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to queue message: %w", err)
	}

	return &dto.InboundMessageResponse{
		ID:         msg.ID,
		UserID:     msg.UserID,
		ReceivedAt: msg.ReceivedAt,
	}, nil
}

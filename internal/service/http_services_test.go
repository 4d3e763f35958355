package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sales-assistant-bot/internal/dto"
	"sales-assistant-bot/internal/entity"
	"sales-assistant-bot/internal/pkg/logger"
	"sales-assistant-bot/pkg/events"
	"sales-assistant-bot/pkg/menu"
	"sales-assistant-bot/pkg/messenger"
	pktNats "sales-assistant-bot/pkg/nats"
	"sales-assistant-bot/pkg/rag/catalog"
	"sales-assistant-bot/pkg/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuService_FileAndFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	yaml := "bienvenida: \"Hola tienda\"\nmenu:\n  - \"1. Catálogo\"\n  - \"5. Salir\"\nrespuestas:\n  \"1\": \"Nuestro catálogo\"\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	got := NewMenuService(path, logger.NewNopLogger()).GetContent()
	assert.Equal(t, "Hola tienda", got.Welcome)
	assert.Equal(t, []string{"1. Catálogo", "5. Salir"}, got.Menu)

	missing := NewMenuService(filepath.Join(dir, "nope.yaml"), logger.NewNopLogger()).GetContent()
	assert.Equal(t, menu.Default(), missing)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("menu: [\n"), 0o644))
	assert.Equal(t, menu.Default(), NewMenuService(bad, logger.NewNopLogger()).GetContent())
}

type stubSearcher struct {
	result catalog.Result
	query  string
}

func (s *stubSearcher) Search(_ context.Context, query string) catalog.Result {
	s.query = query
	return s.result
}

func TestProductService_Search(t *testing.T) {
	priceMax := 250.0
	searcher := &stubSearcher{result: catalog.Result{
		Success:  true,
		Message:  "2 productos",
		Strategy: "price-only",
		Filters:  search.QueryFilters{Keywords: []string{"mouse"}, PriceMax: &priceMax},
		Products: []*entity.Product{{Code: "MS-01", Name: "Mouse", Price: 100, Category: "mouse"}},
	}}

	res := NewProductService(searcher).Search(context.Background(), "  mouse de menos de 250 ")

	assert.Equal(t, "mouse de menos de 250", searcher.query)
	assert.True(t, res.Found)
	assert.Equal(t, "price-only", res.Strategy)
	assert.Equal(t, []string{}, res.Filters.Categories)
	require.NotNil(t, res.Filters.PriceMax)
	assert.Equal(t, 250.0, *res.Filters.PriceMax)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "MS-01", res.Products[0].Code)
}

type recordingSink struct {
	msgs []messenger.Message
	err  error
}

func (s *recordingSink) Push(_ context.Context, msg messenger.Message) error {
	if s.err != nil {
		return s.err
	}
	s.msgs = append(s.msgs, msg)
	return nil
}

func TestInboundService_RateLimitsPerUser(t *testing.T) {
	sink := &recordingSink{}
	svc := NewInboundService(sink, RateConfig{PerMinute: 1, Burst: 2})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Receive(ctx, &dto.InboundMessageRequest{UserID: "u1", Text: "hola"})
		require.NoError(t, err)
	}
	_, err := svc.Receive(ctx, &dto.InboundMessageRequest{UserID: "u1", Text: "hola"})
	assert.ErrorIs(t, err, ErrRateLimited)

	// Other users have their own budget.
	_, err = svc.Receive(ctx, &dto.InboundMessageRequest{UserID: "u2", Text: "hola"})
	assert.NoError(t, err)
	assert.Len(t, sink.msgs, 3)
}

func TestInboundService_Receive(t *testing.T) {
	sink := &recordingSink{}
	svc := NewInboundService(sink, RateConfig{})

	res, err := svc.Receive(context.Background(), &dto.InboundMessageRequest{UserID: " u1 ", Text: "hola"})
	require.NoError(t, err)
	require.Len(t, sink.msgs, 1)
	assert.Equal(t, "u1", sink.msgs[0].UserID)
	assert.Equal(t, "hola", sink.msgs[0].Text)
	assert.Equal(t, sink.msgs[0].ID, res.ID)
	assert.NotEmpty(t, res.ID)

	sink.err = errors.New("closed")
	_, err = svc.Receive(context.Background(), &dto.InboundMessageRequest{UserID: "u1", Text: "otra"})
	assert.ErrorContains(t, err, "closed")
}

type captureSubscriber struct {
	subject string
	durable string
	handler pktNats.EventHandler
}

func (c *captureSubscriber) Subscribe(_ context.Context, subject, durable string, handler pktNats.EventHandler) error {
	c.subject, c.durable, c.handler = subject, durable, handler
	return nil
}

func TestEventAuditService_HandlesEvents(t *testing.T) {
	sub := &captureSubscriber{}
	svc := NewEventAuditService(sub, logger.NewNopLogger())

	require.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, "events.>", sub.subject)
	assert.Equal(t, "conversation-audit", sub.durable)

	now := time.Now()
	assert.NoError(t, sub.handler(context.Background(), events.QueryAnswered("u1", "laptop", 2, now)))
	assert.NoError(t, sub.handler(context.Background(), events.SessionExpired("u1", now, now)))
}

package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sales-assistant-bot/internal/dto"
	"sales-assistant-bot/internal/pkg/serverutils"
	"sales-assistant-bot/internal/service"
	"sales-assistant-bot/pkg/menu"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMenuService struct{}

func (fakeMenuService) GetContent() menu.Content { return menu.Default() }

type fakeInboundService struct {
	got *dto.InboundMessageRequest
	err error
}

func (f *fakeInboundService) Receive(_ context.Context, req *dto.InboundMessageRequest) (*dto.InboundMessageResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.got = req
	return &dto.InboundMessageResponse{ID: "m-1", UserID: req.UserID, ReceivedAt: time.Now()}, nil
}

type fakeProductService struct{ query string }

func (f *fakeProductService) Search(_ context.Context, query string) *dto.ProductSearchResponse {
	f.query = query
	return &dto.ProductSearchResponse{
		Query:    query,
		Found:    true,
		Message:  "1 producto",
		Products: []dto.ProductResponse{{Code: "MS-01", Name: "Mouse", Price: 100}},
	}
}

func newTestApp(inbound *fakeInboundService, products *fakeProductService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewChatController(fakeMenuService{}, inbound).RegisterRoutes(api)
	NewProductController(products).RegisterRoutes(api)
	NewHealthController(false, "websocket").RegisterRoutes(api)
	return app
}

func decode(t *testing.T, body io.Reader, out interface{}) {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestChatController_GetMenu(t *testing.T) {
	app := newTestApp(&fakeInboundService{}, &fakeProductService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/chat", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var content menu.Content
	decode(t, resp.Body, &content)
	assert.Equal(t, menu.Default().Welcome, content.Welcome)
	assert.Len(t, content.Menu, 5)
}

func TestChatController_ReceiveMessage(t *testing.T) {
	inbound := &fakeInboundService{}
	app := newTestApp(inbound, &fakeProductService{})

	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"user_id":"u1","text":"hola"}`, 202},
		{"missing text", `{"user_id":"u1"}`, 400},
		{"missing user", `{"text":"hola"}`, 400},
		{"not json", `hola`, 400},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/messages", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
	require.NotNil(t, inbound.got)
	assert.Equal(t, "hola", inbound.got.Text)
}

func TestChatController_ReceiveMessageQueueFailure(t *testing.T) {
	app := newTestApp(&fakeInboundService{err: errors.New("inbox closed")}, &fakeProductService{})

	req := httptest.NewRequest("POST", "/api/messages", strings.NewReader(`{"user_id":"u1","text":"hola"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestChatController_ReceiveMessageRateLimited(t *testing.T) {
	app := newTestApp(&fakeInboundService{err: service.ErrRateLimited}, &fakeProductService{})

	req := httptest.NewRequest("POST", "/api/messages", strings.NewReader(`{"user_id":"u1","text":"hola"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestProductController_Search(t *testing.T) {
	products := &fakeProductService{}
	app := newTestApp(&fakeInboundService{}, products)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products/search?q=mouse", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "mouse", products.query)

	var out serverutils.BaseResponse[dto.ProductSearchResponse]
	decode(t, resp.Body, &out)
	assert.True(t, out.Success)
	require.Len(t, out.Data.Products, 1)
	assert.Equal(t, "MS-01", out.Data.Products[0].Code)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/products/search?q=%20", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHealthController(t *testing.T) {
	app := newTestApp(&fakeInboundService{}, &fakeProductService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var out serverutils.BaseResponse[HealthStatus]
	decode(t, resp.Body, &out)
	assert.Equal(t, "degraded", out.Data.Status)
	assert.Equal(t, "websocket", out.Data.Channel)
}

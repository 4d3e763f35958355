package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"sales-assistant-bot/internal/config"
	"sales-assistant-bot/internal/controller"
	"sales-assistant-bot/internal/handler"
	"sales-assistant-bot/internal/pkg/logger"
	"sales-assistant-bot/internal/repository/contract"
	"sales-assistant-bot/internal/repository/implementation"
	"sales-assistant-bot/internal/repository/memory"
	"sales-assistant-bot/internal/repository/redisstore"
	"sales-assistant-bot/internal/service"
	"sales-assistant-bot/internal/websocket"
	"sales-assistant-bot/pkg/conversation"
	"sales-assistant-bot/pkg/document"
	"sales-assistant-bot/pkg/llm/factory"
	"sales-assistant-bot/pkg/menu"
	"sales-assistant-bot/pkg/messenger"
	pktNats "sales-assistant-bot/pkg/nats"
	"sales-assistant-bot/pkg/rag/catalog"
	"sales-assistant-bot/pkg/rag/pipeline"
	"sales-assistant-bot/pkg/rag/response"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	ChannelConsole   = "console"
	ChannelWebsocket = "websocket"

	menuTimeout = 5 * time.Second
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	ChatController    controller.IChatController
	ProductController controller.IProductController
	HealthController  controller.IHealthController

	// Only set on the websocket channel
	ChatSocketHandler *handler.ChatSocketHandler
	WebSocketHub      *websocket.Hub

	// Only set on the console channel
	Console *messenger.Console

	// Background services (started by main)
	BotService        service.IBotService
	EventAuditService *service.EventAuditService

	Machine *conversation.Machine

	closers []func()
}

// NewContainer wires the bot. db may be nil: searches then report the
// catalog store as unavailable. ctx bounds the lifetime of the inbox and
// the websocket connections.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	c := &Container{Logger: sysLogger}

	// 1. Catalog store
	var productRepo contract.ProductRepository
	if db != nil {
		productRepo = implementation.NewProductRepository(db)
	} else {
		sysLogger.Warn("Bootstrap", "Catalog database unavailable, product search disabled", nil)
	}
	searcher := catalog.NewSearcher(productRepo, catalog.Config{
		SinglePriceBand: cfg.Search.SinglePriceBand,
		StrictWiden:     cfg.Search.StrictWiden,
		LooseWiden:      cfg.Search.LooseWiden,
	}, sysLogger)

	// 2. Answer generation
	llmProvider, err := factory.NewLLMProvider(factory.Config{
		Provider: cfg.Ai.LLMProvider,
		Model:    cfg.Ai.LLMModel,
		BaseURL:  llmBaseURL(cfg),
		APIKey:   cfg.Keys.GoogleGemini,
		Timeout:  cfg.Ai.GenerationTimeout,
	})
	if err != nil {
		// The bot keeps answering menu options; queries get the "unavailable" text.
		sysLogger.Warn("Bootstrap", "LLM provider not configured", map[string]interface{}{"error": err.Error()})
	} else {
		sysLogger.Info("Bootstrap", "Using LLM provider", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
			"model":    cfg.Ai.LLMModel,
		})
	}
	generator := response.NewGenerator(llmProvider, cfg.Ai.GenerationTimeout, sysLogger)

	var documents pipeline.DocumentSource
	if cfg.Catalog.Path != "" {
		documents = document.NewLoader(cfg.Catalog.Path)
	}
	queryPipeline := pipeline.NewQueryPipeline(searcher, documents, generator, pipeline.Config{
		ChunkSize:    cfg.Catalog.ChunkSize,
		ChunkOverlap: cfg.Catalog.ChunkOverlap,
		TopChunks:    cfg.Catalog.TopChunks,
	}, sysLogger)

	// 3. Infrastructure
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		rdb = newRedisClient(ctx, cfg.App.RedisURL, sysLogger)
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	var sessions conversation.SessionStore
	if cfg.Bot.SessionStore == "redis" && rdb != nil {
		sessions = redisstore.NewSessionRepository(rdb, time.Hour, sysLogger)
	} else {
		if cfg.Bot.SessionStore == "redis" {
			sysLogger.Warn("Bootstrap", "SESSION_STORE=redis without REDIS_URL, using memory", nil)
		}
		sessions = memory.NewSessionRepository(time.Hour)
	}

	machineOpts := []conversation.Option{conversation.WithQueryModeTimeout(cfg.Bot.QueryModeTimeout)}
	if cfg.App.NatsURL != "" {
		if pub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger); err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to NATS publisher", map[string]interface{}{"error": err.Error()})
		} else {
			machineOpts = append(machineOpts, conversation.WithPublisher(pub))
			c.closers = append(c.closers, pub.Close)
		}

		if sub, err := pktNats.NewSubscriber(cfg.App.NatsURL, sysLogger); err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to NATS subscriber", map[string]interface{}{"error": err.Error()})
		} else {
			c.EventAuditService = service.NewEventAuditService(sub, sysLogger)
			c.closers = append(c.closers, sub.Close)
		}
	}

	// 4. Conversation
	menuClient := menu.NewClient(cfg.Bot.MenuAPIURL, menuTimeout, sysLogger)
	c.Machine = conversation.NewMachine(sessions, menuClient, queryPipeline, sysLogger, machineOpts...)

	// 5. Messaging channel
	inbox, err := messenger.NewInbox(ctx, sysLogger)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to create inbox: %w", err)
	}
	c.closers = append(c.closers, func() { _ = inbox.Close() })

	var channel messenger.Messenger
	switch cfg.Bot.Channel {
	case ChannelWebsocket:
		c.WebSocketHub = websocket.NewHub(inbox, rdb, sysLogger)
		c.ChatSocketHandler = handler.NewChatSocketHandler(ctx, c.WebSocketHub, sysLogger)
		channel = websocket.NewMessenger(c.WebSocketHub, inbox)
	case ChannelConsole, "":
		c.Console = messenger.NewConsole(inbox, os.Stdin, os.Stdout, sysLogger)
		channel = c.Console
	default:
		c.Close()
		return nil, fmt.Errorf("unsupported bot channel: %s", cfg.Bot.Channel)
	}

	c.BotService = service.NewBotService(channel, c.Machine, service.BotConfig{
		PollInterval: cfg.Bot.PollInterval,
		ErrorBackoff: 10 * time.Second,
		MediaPause:   time.Second,
	}, sysLogger)

	// 6. HTTP
	c.ChatController = controller.NewChatController(
		service.NewMenuService(cfg.Bot.MenuFile, sysLogger),
		service.NewInboundService(inbox, service.RateConfig{
			PerMinute: cfg.Bot.InboundPerMinute,
			Burst:     cfg.Bot.InboundBurst,
		}),
	)
	c.ProductController = controller.NewProductController(service.NewProductService(searcher))
	c.HealthController = controller.NewHealthController(db != nil, cfg.Bot.Channel)

	return c, nil
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

func llmBaseURL(cfg *config.Config) string {
	if cfg.Ai.LLMProvider == "ollama" {
		return cfg.Ai.OllamaBaseURL
	}
	return cfg.Ai.GeminiBaseURL
}

func newRedisClient(ctx context.Context, url string, log logger.ILogger) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Warn("Bootstrap", "Failed to parse Redis URL, using it as address", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Warn("Bootstrap", "Failed to connect to Redis", map[string]interface{}{"error": err.Error()})
	}
	return rdb
}

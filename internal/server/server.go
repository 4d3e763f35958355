package server

import (
	"time"

	"sales-assistant-bot/internal/bootstrap"
	"sales-assistant-bot/internal/config"
	"sales-assistant-bot/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

// New builds the HTTP surface: diagnostics, the inbound webhook and, on the
// websocket channel, the chat socket.
func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "sales-assistant-bot",
		BodyLimit:             1 << 20,
		DisableStartupMessage: cfg.Bot.Channel == bootstrap.ChannelConsole,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.CorsAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(otelfiber.Middleware())
	app.Use(serverutils.ErrorHandlerMiddleware())

	api := app.Group("/api")
	container.HealthController.RegisterRoutes(api)
	container.ChatController.RegisterRoutes(api)
	container.ProductController.RegisterRoutes(api)
	if container.ChatSocketHandler != nil {
		container.ChatSocketHandler.RegisterRoutes(app)
	}

	return &Server{app: app, cfg: cfg, container: container}
}

func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("SERVER", "Listening", map[string]interface{}{"port": s.cfg.App.Port})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(shutdownTimeout)
}

package controller

import (
	"time"

	"sales-assistant-bot/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type HealthStatus struct {
	Status   string `json:"status"`
	Database bool   `json:"database"`
	Channel  string `json:"channel"`
	Uptime   string `json:"uptime"`
}

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	databaseUp bool
	channel    string
	startedAt  time.Time
}

func NewHealthController(databaseUp bool, channel string) IHealthController {
	return &healthController{databaseUp: databaseUp, channel: channel, startedAt: time.Now()}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	status := "ok"
	if !c.databaseUp {
		status = "degraded"
	}
	return ctx.JSON(serverutils.SuccessResponse("Health check", HealthStatus{
		Status:   status,
		Database: c.databaseUp,
		Channel:  c.channel,
		Uptime:   time.Since(c.startedAt).Truncate(time.Second).String(),
	}))
}

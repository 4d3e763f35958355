package controller

import (
	"errors"

	"sales-assistant-bot/internal/dto"
	"sales-assistant-bot/internal/pkg/serverutils"
	"sales-assistant-bot/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	GetMenu(ctx *fiber.Ctx) error
	ReceiveMessage(ctx *fiber.Ctx) error
}

type chatController struct {
	menuService    service.IMenuService
	inboundService service.IInboundService
}

func NewChatController(menuService service.IMenuService, inboundService service.IInboundService) IChatController {
	return &chatController{
		menuService:    menuService,
		inboundService: inboundService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Get("/chat", c.GetMenu)
	r.Post("/messages", c.ReceiveMessage)
}

// GetMenu answers with the bare menu document ({bienvenida, menu, respuestas})
// that menu clients consume, not the usual response envelope.
func (c *chatController) GetMenu(ctx *fiber.Ctx) error {
	return ctx.JSON(c.menuService.GetContent())
}

func (c *chatController) ReceiveMessage(ctx *fiber.Ctx) error {
	var req dto.InboundMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.inboundService.Receive(ctx.Context(), &req)
	if errors.Is(err, service.ErrRateLimited) {
		return ctx.Status(fiber.StatusTooManyRequests).JSON(serverutils.ErrorResponse(429, err.Error()))
	}
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse("Message queued", res))
}

package controller

import (
	"strings"

	"sales-assistant-bot/internal/pkg/serverutils"
	"sales-assistant-bot/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
}

type productController struct {
	service service.IProductService
}

func NewProductController(service service.IProductService) IProductController {
	return &productController{service: service}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/products")
	h.Get("/search", c.Search)
}

func (c *productController) Search(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	if strings.TrimSpace(query) == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Query parameter q is required"))
	}

	res := c.service.Search(ctx.Context(), query)
	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}

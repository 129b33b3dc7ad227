package controller

import (
	"krishi-sakhi-be/internal/pkg/serverutils"
	"krishi-sakhi-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMarketController interface {
	RegisterRoutes(r fiber.Router)
	Prices(ctx *fiber.Ctx) error
}

type marketController struct {
	marketService  service.IMarketService
	authMiddleware fiber.Handler
}

func NewMarketController(marketService service.IMarketService, authMiddleware fiber.Handler) IMarketController {
	return &marketController{
		marketService:  marketService,
		authMiddleware: authMiddleware,
	}
}

func (c *marketController) RegisterRoutes(r fiber.Router) {
	r.Get("/market-prices", c.authMiddleware, c.Prices)
}

func (c *marketController) Prices(ctx *fiber.Ctx) error {
	district := ctx.Query("district")

	res, err := c.marketService.Prices(ctx.Context(), district)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch market prices", res))
}

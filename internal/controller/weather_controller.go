package controller

import (
	"krishi-sakhi-be/internal/pkg/serverutils"
	"krishi-sakhi-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWeatherController interface {
	RegisterRoutes(r fiber.Router)
	Report(ctx *fiber.Ctx) error
}

type weatherController struct {
	weatherService service.IWeatherService
	authMiddleware fiber.Handler
}

func NewWeatherController(weatherService service.IWeatherService, authMiddleware fiber.Handler) IWeatherController {
	return &weatherController{
		weatherService: weatherService,
		authMiddleware: authMiddleware,
	}
}

func (c *weatherController) RegisterRoutes(r fiber.Router) {
	r.Get("/weather/:location", c.authMiddleware, c.Report)
}

func (c *weatherController) Report(ctx *fiber.Ctx) error {
	location := ctx.Params("location")

	res, err := c.weatherService.Report(ctx.Context(), location)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch weather", res))
}

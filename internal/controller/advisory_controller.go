package controller

import (
	"krishi-sakhi-be/internal/dto"
	"krishi-sakhi-be/internal/pkg/apperror"
	"krishi-sakhi-be/internal/pkg/serverutils"
	"krishi-sakhi-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdvisoryController interface {
	RegisterRoutes(r fiber.Router)
	CropRecommendations(ctx *fiber.Ctx) error
	IrrigationSchedule(ctx *fiber.Ctx) error
}

type advisoryController struct {
	advisoryService service.IAdvisoryService
	authMiddleware  fiber.Handler
}

func NewAdvisoryController(advisoryService service.IAdvisoryService, authMiddleware fiber.Handler) IAdvisoryController {
	return &advisoryController{
		advisoryService: advisoryService,
		authMiddleware:  authMiddleware,
	}
}

func (c *advisoryController) RegisterRoutes(r fiber.Router) {
	r.Post("/crop-recommendations", c.authMiddleware, c.CropRecommendations)
	r.Post("/irrigation-schedule", c.authMiddleware, c.IrrigationSchedule)
}

func (c *advisoryController) CropRecommendations(ctx *fiber.Ctx) error {
	var req dto.CropRecommendationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid JSON body")
	}

	res := c.advisoryService.CropRecommendations(ctx.Context(), &req)
	return ctx.JSON(serverutils.SuccessResponse("Success fetch crop recommendations", res))
}

func (c *advisoryController) IrrigationSchedule(ctx *fiber.Ctx) error {
	var req dto.IrrigationScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid JSON body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.advisoryService.IrrigationSchedule(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch irrigation schedule", res))
}

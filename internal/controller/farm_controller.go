package controller

import (
	"krishi-sakhi-be/internal/dto"
	"krishi-sakhi-be/internal/pkg/apperror"
	"krishi-sakhi-be/internal/pkg/serverutils"
	"krishi-sakhi-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFarmController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Dashboard(ctx *fiber.Ctx) error
}

type farmController struct {
	farmService    service.IFarmService
	authMiddleware fiber.Handler
}

func NewFarmController(farmService service.IFarmService, authMiddleware fiber.Handler) IFarmController {
	return &farmController{
		farmService:    farmService,
		authMiddleware: authMiddleware,
	}
}

func (c *farmController) RegisterRoutes(r fiber.Router) {
	r.Get("/farm-data", c.authMiddleware, c.List)
	r.Post("/farm-data", c.authMiddleware, c.Create)
	r.Get("/dashboard", c.authMiddleware, c.Dashboard)
}

func (c *farmController) List(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)

	res, err := c.farmService.Records(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch farm data", res))
}

func (c *farmController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)

	var req dto.CreateFarmRecordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid JSON body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.farmService.AddRecord(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Farm record created", res))
}

func (c *farmController) Dashboard(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)

	res, err := c.farmService.Dashboard(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch dashboard", res))
}

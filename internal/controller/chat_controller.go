package controller

import (
	"krishi-sakhi-be/internal/dto"
	"krishi-sakhi-be/internal/pkg/apperror"
	"krishi-sakhi-be/internal/pkg/serverutils"
	"krishi-sakhi-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService    service.IChatService
	authMiddleware fiber.Handler
}

func NewChatController(chatService service.IChatService, authMiddleware fiber.Handler) IChatController {
	return &chatController{
		chatService:    chatService,
		authMiddleware: authMiddleware,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.authMiddleware, c.Chat)
	r.Get("/chat-history", c.authMiddleware, c.History)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid JSON body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Chat(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uuid.UUID)

	res, err := c.chatService.History(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch chat history", res))
}

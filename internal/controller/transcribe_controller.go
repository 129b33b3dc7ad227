package controller

import (
	"krishi-sakhi-be/internal/pkg/serverutils"
	"krishi-sakhi-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITranscribeController interface {
	RegisterRoutes(r fiber.Router)
	Transcribe(ctx *fiber.Ctx) error
}

type transcribeController struct {
	transcribeService service.ITranscribeService
}

func NewTranscribeController(transcribeService service.ITranscribeService) ITranscribeController {
	return &transcribeController{
		transcribeService: transcribeService,
	}
}

// Transcription stays open: the voice widget fires before login completes.
func (c *transcribeController) RegisterRoutes(r fiber.Router) {
	r.Post("/transcribe", c.Transcribe)
}

func (c *transcribeController) Transcribe(ctx *fiber.Ctx) error {
	lang := ctx.Query("lang")
	if lang == "" {
		lang = ctx.FormValue("lang")
	}

	res, err := c.transcribeService.Transcribe(ctx.Context(), lang, ctx.Body(), ctx.Get("Content-Type"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

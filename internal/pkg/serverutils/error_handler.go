package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"krishi-sakhi-be/internal/pkg/apperror"
	"krishi-sakhi-be/internal/pkg/logger"
)

// ErrorHandlerMiddleware converts service errors into the JSON envelope.
// AppErrors keep their status; everything else becomes a logged 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr, ok := apperror.As(err); ok {
			body := fiber.Map{
				"success": false,
				"code":    appErr.Status,
				"message": appErr.Message,
			}
			if appErr.Details != "" {
				body["details"] = appErr.Details
			}
			return ctx.Status(appErr.Status).JSON(body)
		}

		if fiberErr, ok := err.(*fiber.Error); ok {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "internal server error"))
	}
}

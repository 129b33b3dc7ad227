package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError is the error type every handler boundary understands. Services
// return one of the constructors below; the fiber error handler maps it to
// a status code and JSON envelope.
type AppError struct {
	Status  int
	Message string
	Details string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Validation covers missing or malformed input.
func Validation(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: message}
}

// Auth covers missing or invalid credentials and sessions.
func Auth(message string) *AppError {
	return &AppError{Status: fiber.StatusUnauthorized, Message: message}
}

// Conflict covers unique-constraint violations (duplicate phone number).
func Conflict(message string) *AppError {
	return &AppError{Status: fiber.StatusConflict, Message: message}
}

// NotFound covers lookups of rows that do not exist.
func NotFound(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Message: message}
}

// Upstream propagates a non-success status from an external API, carrying
// the raw body for the client.
func Upstream(status int, message, details string) *AppError {
	return &AppError{Status: status, Message: message, Details: details}
}

// Network covers transport failures on outbound calls (timeout, DNS,
// connection reset). Always a 502.
func Network(err error) *AppError {
	return &AppError{Status: fiber.StatusBadGateway, Message: "network error", Err: err}
}

// Internal wraps anything unexpected.
func Internal(err error) *AppError {
	return &AppError{Status: fiber.StatusInternalServerError, Message: "internal server error", Err: err}
}

// As extracts an *AppError from an error chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

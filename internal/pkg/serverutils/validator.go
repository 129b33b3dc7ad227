package serverutils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"krishi-sakhi-be/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and folds failures into a
// single ValidationError message.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Validation("invalid request body")
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return apperror.Validation("invalid or missing fields: " + strings.Join(fields, ", "))
}

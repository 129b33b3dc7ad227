package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"krishi-sakhi-be/internal/dto"
	"krishi-sakhi-be/internal/pkg/apperror"
)

func TestValidateRequest(t *testing.T) {
	t.Run("valid payload passes", func(t *testing.T) {
		err := ValidateRequest(&dto.LoginRequest{Phone: "9876543210", Password: "secret123"})
		assert.NoError(t, err)
	})

	t.Run("missing fields are listed", func(t *testing.T) {
		err := ValidateRequest(&dto.LoginRequest{})

		appErr, ok := apperror.As(err)
		assert.True(t, ok)
		assert.Equal(t, 400, appErr.Status)
		assert.Contains(t, appErr.Message, "phone")
		assert.Contains(t, appErr.Message, "password")
	})

	t.Run("short password is flagged", func(t *testing.T) {
		err := ValidateRequest(&dto.RegisterRequest{
			Name:            "Ravi",
			Phone:           "9876543210",
			Aadhaar:         "123412341234",
			Pincode:         "680001",
			District:        "Thrissur",
			Password:        "abc",
			ConfirmPassword: "abc",
		})

		appErr, ok := apperror.As(err)
		assert.True(t, ok)
		assert.Contains(t, appErr.Message, "password")
	})

	t.Run("malformed email is flagged", func(t *testing.T) {
		err := ValidateRequest(&dto.RegisterRequest{
			Name:            "Ravi",
			Phone:           "9876543210",
			Email:           "not-an-email",
			Aadhaar:         "123412341234",
			Pincode:         "680001",
			District:        "Thrissur",
			Password:        "secret123",
			ConfirmPassword: "secret123",
		})

		appErr, ok := apperror.As(err)
		assert.True(t, ok)
		assert.Contains(t, appErr.Message, "email")
	})
}

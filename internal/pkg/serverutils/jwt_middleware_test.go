package serverutils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func newProtectedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/protected", NewJwtMiddleware(secret), func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"user_id": ctx.Locals("user_id")})
	})
	return app
}

func TestJwtMiddleware(t *testing.T) {
	const secret = "test-secret"

	t.Run("missing header is rejected", func(t *testing.T) {
		app := newProtectedApp(secret)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})

	t.Run("non bearer header is rejected", func(t *testing.T) {
		app := newProtectedApp(secret)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		app := newProtectedApp(secret)
		token := signTestToken(t, "other-secret", jwt.MapClaims{
			"user_id": "abc",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		app := newProtectedApp(secret)
		token := signTestToken(t, secret, jwt.MapClaims{
			"user_id": "abc",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})

	t.Run("missing user id claim is rejected", func(t *testing.T) {
		app := newProtectedApp(secret)
		token := signTestToken(t, secret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})

	t.Run("non uuid user id claim is rejected", func(t *testing.T) {
		app := newProtectedApp(secret)
		token := signTestToken(t, secret, jwt.MapClaims{
			"user_id": "not-a-uuid",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})

	t.Run("numeric user id claim is rejected", func(t *testing.T) {
		app := newProtectedApp(secret)
		token := signTestToken(t, secret, jwt.MapClaims{
			"user_id": 12345,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
	})

	t.Run("valid token stores the parsed user id", func(t *testing.T) {
		app := newProtectedApp(secret)
		token := signTestToken(t, secret, jwt.MapClaims{
			"user_id": "8f14e45f-ea0f-4f7a-9c59-3a1d0e6a3f21",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)

		body, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		assert.Contains(t, string(body), "8f14e45f-ea0f-4f7a-9c59-3a1d0e6a3f21")
	})
}

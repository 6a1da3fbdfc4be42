package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"solsight/internal/services/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "middleware-test-secret"

func newProtectedApp(t *testing.T) (*fiber.App, auth.Service) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("operator-key"), bcrypt.MinCost)
	require.NoError(t, err)

	authService := auth.NewService(string(hash), testSecret, time.Hour)
	app := fiber.New()
	app.Get("/protected", NewAuthMiddleware(authService).Handler, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app, authService
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	app, authService := newProtectedApp(t)

	token, err := authService.IssueToken("operator-key")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app, _ := newProtectedApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app, authService := newProtectedApp(t)

	token, err := authService.IssueToken("operator-key")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	app, _ := newProtectedApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

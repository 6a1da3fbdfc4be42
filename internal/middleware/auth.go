// Package middleware provides HTTP middleware for the fiber app. Only the
// operator tier (scan history, cache admin) requires authentication; the
// analysis endpoints are public.
package middleware

import (
	"strings"

	"solsight/internal/services/auth"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates operator JWTs and stores the claims in the
// request context.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Handler checks for a Bearer token signed by the auth service.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := m.authService.ParseToken(tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals("claims", claims)
	return c.Next()
}

package handlers

import (
	"solsight/internal/services/auth"
	"solsight/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// IssueToken exchanges the operator API key for a short-lived JWT.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var input struct {
		APIKey string `json:"api_key"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if input.APIKey == "" {
		return utils.BadRequest(c, "api_key is required")
	}

	token, err := h.authService.IssueToken(input.APIKey)
	if err != nil {
		return utils.Unauthorized(c, "invalid api key")
	}

	return utils.Success(c, fiber.Map{
		"token": token,
	})
}

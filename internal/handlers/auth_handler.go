package handlers

import (
	"blogapp/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService, validate: validator.New()}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/token", h.HandleToken)
	authRoutes.Post("/refresh", h.HandleRefreshToken)
}

// TokenRequest represents the credentials presented for a token.
type TokenRequest struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries a previously issued refresh token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// HandleToken authenticates credentials and issues the token pair.
func (h *AuthHandler) HandleToken(c *fiber.Ctx) error {
	var req TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	result, err := h.authService.Token(req.UserName, req.Password)
	if err != nil {
		return serverError(c, "token", err)
	}
	if !result.Success {
		return c.Status(fiber.StatusUnauthorized).JSON(result)
	}
	return c.JSON(result)
}

// HandleRefreshToken issues a new access token against a valid refresh
// token.
func (h *AuthHandler) HandleRefreshToken(c *fiber.Ctx) error {
	var req RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}

	result, err := h.authService.RefreshToken(req.RefreshToken)
	if err != nil {
		return serverError(c, "refresh token", err)
	}
	if !result.Success {
		return c.Status(fiber.StatusUnauthorized).JSON(result)
	}
	return c.JSON(result)
}

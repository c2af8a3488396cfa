package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ADITHIYAN008/backend/internal/api/dto"
	"github.com/ADITHIYAN008/backend/internal/auth"
	"github.com/ADITHIYAN008/backend/internal/service"
	apperrors "github.com/ADITHIYAN008/backend/pkg/util"
)

// sessionDuration is the wire value clients receive for expiresIn.
const sessionDuration = "2h"

// AuthHandler exposes login and token introspection endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	// empty fields fall through to the credential check so an absent
	// identifier fails exactly like a wrong one
	token, _, err := h.auth.Login(req.Identifier, req.Secret)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{Token: token, ExpiresIn: sessionDuration})
}

// Validate handles GET /auth/validate.
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(dto.ValidateResponse{Valid: true, User: claimsResponse(claims)})
}

// Profile handles GET /profile.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.Status(http.StatusOK).JSON(dto.ProfileResponse{
		Message: "Protected route working!",
		User:    claimsResponse(claims),
	})
}

func claimsResponse(claims *auth.Claims) dto.ClaimsResponse {
	return dto.ClaimsResponse{
		ID:   claims.Identifier,
		Name: claims.DisplayName,
		Role: string(claims.Role),
	}
}

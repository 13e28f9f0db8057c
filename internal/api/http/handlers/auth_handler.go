package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pixelcraft/agency-backoffice/internal/api/dto"
	"github.com/pixelcraft/agency-backoffice/internal/domain"
	"github.com/pixelcraft/agency-backoffice/internal/service"
	apperrors "github.com/pixelcraft/agency-backoffice/pkg/util"
)

// AuthHandler manages sign-in and client registration.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}
	account, token, exp, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		Token:     token,
		ExpiresAt: exp,
		Account:   accountResponse(account),
	}})
}

// Register POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" || strings.TrimSpace(req.FullName) == "" {
		return apperrors.NewValidationError("full_name, email, password required", nil)
	}
	account, err := h.auth.RegisterClient(c.UserContext(), req.FullName, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": accountResponse(account)})
}

func accountResponse(account *domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:         account.ID,
		Email:      account.Email,
		FullName:   account.FullName,
		ClientCode: account.ClientCode,
		CreatedAt:  account.CreatedAt,
	}
}

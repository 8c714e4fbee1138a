package handlers

import (
	"errors"

	"github.com/freelansy/freelansy/internal/config"
	"github.com/freelansy/freelansy/internal/dto"
	"github.com/freelansy/freelansy/internal/services"
	"github.com/freelansy/freelansy/internal/session"
	"github.com/freelansy/freelansy/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	users       *services.UserService
	authService *services.AuthService
	cfg         *config.Config
}

func NewUserHandler(users *services.UserService, authService *services.AuthService, cfg *config.Config) *UserHandler {
	return &UserHandler{users: users, authService: authService, cfg: cfg}
}

// UpdateProfile applies the provided fields and re-issues the session cookie
// so the claims reflect the new profile immediately.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if fields := validation.Struct(&req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Message: "Validation failed", Errors: fields,
		})
	}

	user, err := h.users.UpdateProfile(c.UserContext(), userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, "Utilisateur introuvable.")
		}
		return serverError(c, "update profile", err)
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		return serverError(c, "reissue session token", err)
	}
	setSessionCookie(c, h.cfg, token)

	return c.JSON(dto.ProfilePayload{
		Message: "Profile updated successfully",
		User:    dto.NewUserResponse(user),
	})
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if fields := validation.Struct(&req); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Message: "Validation failed", Errors: fields,
		})
	}

	if err := h.users.ChangePassword(c.UserContext(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrWrongPassword):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Le mot de passe actuel est incorrect.",
			})
		case errors.Is(err, services.ErrUserNotFound):
			return notFound(c, "Utilisateur introuvable.")
		default:
			return serverError(c, "change password", err)
		}
	}

	return c.JSON(dto.MessageResponse{Message: "Password updated successfully"})
}

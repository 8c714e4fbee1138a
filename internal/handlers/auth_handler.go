package handlers

import (
	"errors"
	"time"

	"github.com/freelansy/freelansy/internal/config"
	"github.com/freelansy/freelansy/internal/dto"
	"github.com/freelansy/freelansy/internal/services"
	"github.com/freelansy/freelansy/internal/session"
	"github.com/freelansy/freelansy/internal/validation"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
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

	user, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "Cet e-mail est déjà utilisé.",
			})
		}
		return serverError(c, "register", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Message: "User registered successfully",
		User:    dto.NewUserResponse(user),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
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

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// User-not-found and wrong-password answer identically.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "E-mail ou mot de passe incorrect.",
			})
		}
		return serverError(c, "login", err)
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		return serverError(c, "issue session token", err)
	}
	setSessionCookie(c, h.cfg, token)

	return c.JSON(dto.AuthResponse{
		Message: "Logged in successfully",
		User:    dto.NewUserResponse(user),
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	clearSessionCookie(c, h.cfg)
	return c.JSON(dto.MessageResponse{Message: "Logged out successfully"})
}

// Session returns the claims frozen into the current token. The SDK's user
// store bootstraps from this endpoint.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	claims, err := session.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	return c.JSON(claims)
}

// CheckEmail reports whether an email is already registered, matching
// case-insensitively. Public: the signup form polls it during step 1.
func (h *AuthHandler) CheckEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Email parameter is required",
		})
	}

	exists, err := h.authService.EmailExists(email)
	if err != nil {
		return serverError(c, "check email", err)
	}
	return c.JSON(dto.CheckEmailResponse{Exists: exists})
}

func setSessionCookie(c *fiber.Ctx, cfg *config.Config, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(cfg.SessionTTL),
		HTTPOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
}

func clearSessionCookie(c *fiber.Ctx, cfg *config.Config) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
}

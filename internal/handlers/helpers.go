package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/freelansy/freelansy/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// serverError logs the underlying error (picked up by the system-log handler
// and Sentry) and answers with a generic 500; internals never reach clients.
func serverError(c *fiber.Ctx, action string, err error) error {
	slog.Error("request failed",
		"action", action,
		"method", c.Method(),
		"path", c.Path(),
		"trace_id", traceID(c),
		"error", err.Error(),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}

func traceID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

// isStorageTimeout detects a database that stopped answering in time; the
// caller maps it to 504 with a retry invitation.
func isStorageTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out")
}

func gatewayTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusGatewayTimeout).JSON(dto.ErrorResponse{
		Error: true, Message: "La base de données n'a pas répondu à temps. Veuillez réessayer.",
	})
}

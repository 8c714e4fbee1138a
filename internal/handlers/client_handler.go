package handlers

import (
	"errors"

	"github.com/freelansy/freelansy/internal/dto"
	"github.com/freelansy/freelansy/internal/services"
	"github.com/freelansy/freelansy/internal/session"
	"github.com/freelansy/freelansy/internal/validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ClientHandler struct {
	clients *services.ClientService
}

func NewClientHandler(clients *services.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	clients, err := h.clients.List(c.UserContext(), userID)
	if err != nil {
		return serverError(c, "list clients", err)
	}

	resp := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		resp = append(resp, dto.NewClientResponse(&clients[i]))
	}
	return c.JSON(resp)
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ClientRequest
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

	client, err := h.clients.Create(c.UserContext(), userID, &req)
	if err != nil {
		return serverError(c, "create client", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ClientPayload{
		Message: "Client created successfully",
		Client:  dto.NewClientResponse(client),
	})
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "Client introuvable.")
	}

	var req dto.ClientRequest
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

	client, err := h.clients.Update(c.UserContext(), userID, clientID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return notFound(c, "Client introuvable.")
		}
		return serverError(c, "update client", err)
	}

	return c.JSON(dto.ClientPayload{
		Message: "Client updated successfully",
		Client:  dto.NewClientResponse(client),
	})
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "Client introuvable.")
	}

	if err := h.clients.Delete(c.UserContext(), userID, clientID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return notFound(c, "Client introuvable.")
		}
		return serverError(c, "delete client", err)
	}
	return c.JSON(dto.MessageResponse{Message: "Client deleted successfully"})
}

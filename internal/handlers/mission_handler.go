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

type MissionHandler struct {
	missions *services.MissionService
}

func NewMissionHandler(missions *services.MissionService) *MissionHandler {
	return &MissionHandler{missions: missions}
}

func (h *MissionHandler) List(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	missions, err := h.missions.List(c.UserContext(), userID)
	if err != nil {
		return serverError(c, "list missions", err)
	}

	resp := make([]dto.MissionResponse, 0, len(missions))
	for i := range missions {
		resp = append(resp, dto.NewMissionResponse(&missions[i]))
	}
	return c.JSON(resp)
}

func (h *MissionHandler) Create(c *fiber.Ctx) error {
	claims, err := session.FromContext(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.MissionRequest
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

	mission, err := h.missions.Create(c.UserContext(), claims.UserID, claims.Currency, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrClientNotFound):
			return notFound(c, "Client introuvable.")
		case errors.Is(err, dto.ErrInvalidDate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "La date est invalide.",
			})
		default:
			return serverError(c, "create mission", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MissionPayload{
		Message: "Mission created successfully",
		Mission: dto.NewMissionResponse(mission),
	})
}

func (h *MissionHandler) Update(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	missionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "Mission introuvable.")
	}

	var req dto.MissionRequest
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

	mission, err := h.missions.Update(c.UserContext(), userID, missionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return notFound(c, "Mission introuvable.")
		case errors.Is(err, services.ErrClientNotFound):
			return notFound(c, "Client introuvable.")
		case errors.Is(err, dto.ErrInvalidDate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "La date est invalide.",
			})
		case isStorageTimeout(err):
			return gatewayTimeout(c)
		default:
			return serverError(c, "update mission", err)
		}
	}

	return c.JSON(dto.MissionPayload{
		Message: "Mission updated successfully",
		Mission: dto.NewMissionResponse(mission),
	})
}

func (h *MissionHandler) Delete(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}
	missionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return notFound(c, "Mission introuvable.")
	}

	if err := h.missions.Delete(c.UserContext(), userID, missionID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return notFound(c, "Mission introuvable.")
		case isStorageTimeout(err):
			return gatewayTimeout(c)
		default:
			return serverError(c, "delete mission", err)
		}
	}
	return c.JSON(dto.MessageResponse{Message: "Mission deleted successfully"})
}

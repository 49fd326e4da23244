package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/platewatch/platewatch/internal/dto"
	"github.com/platewatch/platewatch/internal/middleware"
	"github.com/platewatch/platewatch/internal/services"
)

type PlateHandler struct {
	plateService *services.PlateService
	authService  *services.AuthService
}

func NewPlateHandler(plateService *services.PlateService, authService *services.AuthService) *PlateHandler {
	return &PlateHandler{plateService: plateService, authService: authService}
}

func (h *PlateHandler) Check(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Unauthorized",
		})
	}

	var req dto.CheckPlateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	resp, err := h.plateService.CheckPlate(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingPlate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "Missing plate",
			})
		case errors.Is(err, services.ErrPlateConflict):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Internal server error",
		})
	}

	return c.JSON(resp)
}

func (h *PlateHandler) SetStatus(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Unauthorized",
		})
	}

	plateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "Plate not found",
		})
	}

	var req dto.SetPlateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	if req.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Missing status",
		})
	}

	if err := h.plateService.SetStatus(plateID, userID, &req); err != nil {
		if errors.Is(err, services.ErrPlateNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "Plate not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Internal server error",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Status updated"})
}

func (h *PlateHandler) History(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Unauthorized",
		})
	}

	user, err := h.authService.UserByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Unauthorized",
		})
	}
	if !user.Active {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Account is inactive",
		})
	}

	rows, err := h.plateService.HistoryFor(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Internal server error",
		})
	}

	return c.JSON(rows)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gita006/ResumeVision/internal/models"
	"github.com/gita006/ResumeVision/internal/repositories"
)

type ResultHandler struct {
	screeningRepo repositories.ScreeningRepository
}

func NewResultHandler(screeningRepo repositories.ScreeningRepository) *ResultHandler {
	return &ResultHandler{
		screeningRepo: screeningRepo,
	}
}

// HandleGetResult handles GET /screenings/:id
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	screeningID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid screening ID format",
		})
	}

	screening, err := h.screeningRepo.FindByID(screeningID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Screening not found",
		})
	}

	response := models.ResultResponse{
		ID:     screening.ID.String(),
		Status: string(screening.Status),
	}

	if screening.Status == models.StatusCompleted {
		response.Result = screening.Report()
	}

	if screening.Status == models.StatusFailed && screening.ErrorMessage != nil {
		response.ErrorMessage = screening.ErrorMessage
	}

	return c.JSON(response)
}

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gita006/ResumeVision/internal/models"
	"github.com/gita006/ResumeVision/internal/repositories"
	"github.com/gita006/ResumeVision/internal/services"
)

type ScreenHandler struct {
	screeningRepo repositories.ScreeningRepository
	resumeRepo    repositories.ResumeRepository
	jobRepo       repositories.JobRepository
	worker        services.Worker
}

func NewScreenHandler(
	screeningRepo repositories.ScreeningRepository,
	resumeRepo repositories.ResumeRepository,
	jobRepo repositories.JobRepository,
	worker services.Worker,
) *ScreenHandler {
	return &ScreenHandler{
		screeningRepo: screeningRepo,
		resumeRepo:    resumeRepo,
		jobRepo:       jobRepo,
		worker:        worker,
	}
}

// HandleScreen handles POST /screen
func (h *ScreenHandler) HandleScreen(c *fiber.Ctx) error {
	var req models.ScreenRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ResumeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_id is required",
		})
	}

	if req.JobID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_id is required",
		})
	}

	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume_id format",
		})
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job_id format",
		})
	}

	// Verify records exist
	if _, err := h.resumeRepo.FindByID(resumeID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume not found",
		})
	}

	if _, err := h.jobRepo.FindByID(jobID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job not found",
		})
	}

	screening := &models.Screening{
		ID:        uuid.New(),
		ResumeID:  resumeID,
		JobID:     jobID,
		Status:    models.StatusQueued,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.screeningRepo.Create(screening); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create screening",
		})
	}

	// Enqueue and return the screening ID immediately
	h.worker.EnqueueJob(screening.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.ScreenResponse{
		ID:     screening.ID.String(),
		Status: string(models.StatusQueued),
	})
}

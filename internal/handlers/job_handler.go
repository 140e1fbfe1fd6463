package handlers

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/gita006/ResumeVision/internal/models"
	"github.com/gita006/ResumeVision/internal/repositories"
	"github.com/gita006/ResumeVision/internal/services"
)

type JobHandler struct {
	jobRepo repositories.JobRepository
	indexer services.JobIndexerService
}

func NewJobHandler(
	jobRepo repositories.JobRepository,
	indexer services.JobIndexerService,
) *JobHandler {
	return &JobHandler{
		jobRepo: jobRepo,
		indexer: indexer,
	}
}

// HandleCreateJob handles POST /jobs
func (h *JobHandler) HandleCreateJob(c *fiber.Ctx) error {
	var req models.CreateJobRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.Title) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title is required",
		})
	}

	if strings.TrimSpace(req.Description) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "description is required",
		})
	}

	job := &models.Job{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.jobRepo.Create(job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create job",
		})
	}

	// Indexing failure is not fatal: the matching step falls back to the raw
	// job description when no chunks were stored.
	if err := h.indexer.IndexJob(c.Context(), job); err != nil {
		log.Printf("⚠️  Failed to index job %s: %v\n", job.ID, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.CreateJobResponse{
		ID:    job.ID.String(),
		Title: job.Title,
	})
}

package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/gita006/ResumeVision/internal/models"
	"github.com/gita006/ResumeVision/internal/repositories"
)

type PreferenceHandler struct {
	prefRepo repositories.PreferenceRepository
}

func NewPreferenceHandler(prefRepo repositories.PreferenceRepository) *PreferenceHandler {
	return &PreferenceHandler{
		prefRepo: prefRepo,
	}
}

// HandleSavePreference handles PUT /preferences/:user
func (h *PreferenceHandler) HandleSavePreference(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Params("user"))
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user is required",
		})
	}

	var req models.PreferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	name := strings.TrimSpace(req.Name)
	roles := strings.TrimSpace(req.PreferredRoles)

	if name == "" && roles == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name or preferred_roles is required",
		})
	}

	// A partial update keeps the other field instead of blanking it: the
	// stored value wins, then the documented default.
	if name == "" || roles == "" {
		existing, err := h.prefRepo.FindByUserID(userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to load preference",
			})
		}
		if existing != nil {
			if name == "" {
				name = existing.Name
			}
			if roles == "" {
				roles = existing.PreferredRoles
			}
		}
	}
	if name == "" {
		name = models.DefaultUserName
	}
	if roles == "" {
		roles = models.DefaultPreferredRoles
	}

	pref := &models.Preference{
		UserID:         userID,
		Name:           name,
		PreferredRoles: roles,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := h.prefRepo.Upsert(pref); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save preference",
		})
	}

	return c.JSON(fiber.Map{"status": "success"})
}

// HandleGetPreference handles GET /preferences/:user. Users that never saved
// anything get the documented defaults instead of a 404.
func (h *PreferenceHandler) HandleGetPreference(c *fiber.Ctx) error {
	userID := strings.TrimSpace(c.Params("user"))
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "user is required",
		})
	}

	pref, err := h.prefRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(models.PreferenceResponse{
				UserID:         userID,
				Name:           models.DefaultUserName,
				PreferredRoles: models.DefaultPreferredRoles,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load preference",
		})
	}

	return c.JSON(models.PreferenceResponse{
		UserID:         pref.UserID,
		Name:           pref.Name,
		PreferredRoles: pref.PreferredRoles,
	})
}

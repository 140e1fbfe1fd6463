package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gita006/ResumeVision/internal/models"
)

type ScreeningRepository interface {
	Create(screening *models.Screening) error
	FindByID(id uuid.UUID) (*models.Screening, error)
	UpdateStatus(id uuid.UUID, status models.ScreeningStatus) error
	UpdateResult(id uuid.UUID, result *ScreeningUpdateData) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.Screening, error)
}

type ScreeningUpdateData struct {
	CandidateName  *string
	Graduation     *string
	Skills         []string
	Certifications []string
	RawResponse    *string
	MatchedSkills  []string
	MissingSkills  []string
	Matched        *bool
	FitScore       *int
	Recommendation *string
	Decision       *models.Decision
}

type screeningRepository struct {
	db *gorm.DB
}

func NewScreeningRepository(db *gorm.DB) ScreeningRepository {
	return &screeningRepository{db: db}
}

func (r *screeningRepository) Create(screening *models.Screening) error {
	if err := r.db.Create(screening).Error; err != nil {
		return fmt.Errorf("failed to create screening: %w", err)
	}
	return nil
}

func (r *screeningRepository) FindByID(id uuid.UUID) (*models.Screening, error) {
	var screening models.Screening
	if err := r.db.Where("id = ?", id).First(&screening).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("screening not found")
		}
		return nil, fmt.Errorf("failed to find screening: %w", err)
	}
	return &screening, nil
}

func (r *screeningRepository) UpdateStatus(id uuid.UUID, status models.ScreeningStatus) error {
	result := r.db.Model(&models.Screening{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("screening not found")
	}

	return nil
}

func (r *screeningRepository) UpdateResult(id uuid.UUID, data *ScreeningUpdateData) error {
	updates := map[string]interface{}{
		"status":     models.StatusCompleted,
		"updated_at": time.Now(),
	}

	if data.CandidateName != nil {
		updates["candidate_name"] = *data.CandidateName
	}
	if data.Graduation != nil {
		updates["graduation"] = *data.Graduation
	}
	// Serialized by hand: map-based Updates bypasses the model's json
	// serializer, and jsonb columns want JSON text.
	if data.Skills != nil {
		updates["skills"] = mustJSON(data.Skills)
	}
	if data.Certifications != nil {
		updates["certifications"] = mustJSON(data.Certifications)
	}
	if data.RawResponse != nil {
		updates["raw_response"] = *data.RawResponse
	}
	if data.MatchedSkills != nil {
		updates["matched_skills"] = mustJSON(data.MatchedSkills)
	}
	if data.MissingSkills != nil {
		updates["missing_skills"] = mustJSON(data.MissingSkills)
	}
	if data.Matched != nil {
		updates["matched"] = *data.Matched
	}
	if data.FitScore != nil {
		updates["fit_score"] = *data.FitScore
	}
	if data.Recommendation != nil {
		updates["recommendation"] = *data.Recommendation
	}
	if data.Decision != nil {
		updates["decision"] = *data.Decision
	}

	result := r.db.Model(&models.Screening{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("screening not found")
	}

	return nil
}

func mustJSON(values []string) string {
	b, _ := json.Marshal(values)
	return string(b)
}

func (r *screeningRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.Screening{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("screening not found")
	}

	return nil
}

func (r *screeningRepository) FindPendingJobs(limit int) ([]models.Screening, error) {
	var screenings []models.Screening
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&screenings).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return screenings, nil
}

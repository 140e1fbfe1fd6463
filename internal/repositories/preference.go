package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gita006/ResumeVision/internal/models"
)

type PreferenceRepository interface {
	Upsert(pref *models.Preference) error
	FindByUserID(userID string) (*models.Preference, error)
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Upsert(pref *models.Preference) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "preferred_roles", "updated_at"}),
	}).Create(pref).Error

	if err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}
	return nil
}

func (r *preferenceRepository) FindByUserID(userID string) (*models.Preference, error) {
	var pref models.Preference
	if err := r.db.Where("user_id = ?", userID).First(&pref).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to find preference: %w", err)
	}
	return &pref, nil
}

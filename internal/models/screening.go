package models

import (
	"time"

	"github.com/google/uuid"
)

type ScreeningStatus string

const (
	StatusQueued     ScreeningStatus = "queued"
	StatusProcessing ScreeningStatus = "processing"
	StatusCompleted  ScreeningStatus = "completed"
	StatusFailed     ScreeningStatus = "failed"
)

type Decision string

const (
	DecisionHire   Decision = "hire"
	DecisionReject Decision = "reject"
)

// NotAvailable is recorded for profile fields the extraction step could not
// find in the resume.
const NotAvailable = "N/A"

type Screening struct {
	ID       uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ResumeID uuid.UUID       `gorm:"type:uuid;not null" json:"resume_id"`
	JobID    uuid.UUID       `gorm:"type:uuid;not null" json:"job_id"`
	Status   ScreeningStatus `gorm:"not null;default:'queued'" json:"status"`

	// Extraction step output. RawResponse keeps the unparseable LLM reply
	// when extraction degraded to the N/A profile.
	CandidateName  *string  `gorm:"type:text" json:"candidate_name,omitempty"`
	Graduation     *string  `gorm:"type:text" json:"graduation,omitempty"`
	Skills         []string `gorm:"serializer:json;type:jsonb" json:"skills,omitempty"`
	Certifications []string `gorm:"serializer:json;type:jsonb" json:"certifications,omitempty"`
	RawResponse    *string  `gorm:"type:text" json:"raw_response,omitempty"`

	// Matching step output.
	MatchedSkills []string `gorm:"serializer:json;type:jsonb" json:"matched_skills,omitempty"`
	MissingSkills []string `gorm:"serializer:json;type:jsonb" json:"missing_skills,omitempty"`
	Matched       *bool    `json:"matched,omitempty"`

	// Scoring and recommendation step output.
	FitScore       *int      `json:"fit_score,omitempty"`
	Recommendation *string   `gorm:"type:text" json:"recommendation,omitempty"`
	Decision       *Decision `gorm:"type:text" json:"decision,omitempty"`

	ErrorMessage *string   `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Resume Resume `gorm:"foreignKey:ResumeID" json:"-"`
	Job    Job    `gorm:"foreignKey:JobID" json:"-"`
}

func (Screening) TableName() string {
	return "screenings"
}

package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileKind     string `json:"file_kind"`
}

type CreateJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type CreateJobResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ScreenRequest struct {
	ResumeID string `json:"resume_id" validate:"required,uuid"`
	JobID    string `json:"job_id" validate:"required,uuid"`
}

type ScreenResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID           string           `json:"id"`
	Status       string           `json:"status"`
	Result       *ScreeningReport `json:"result,omitempty"`
	ErrorMessage *string          `json:"error_message,omitempty"`
}

type ScreeningReport struct {
	CandidateName  string   `json:"candidate_name"`
	Graduation     string   `json:"graduation"`
	Skills         []string `json:"skills"`
	Certifications []string `json:"certifications"`
	MatchedSkills  []string `json:"matched_skills"`
	MissingSkills  []string `json:"missing_skills"`
	Matched        bool     `json:"matched"`
	FitScore       int      `json:"fit_score"`
	Recommendation string   `json:"recommendation"`
	Decision       string   `json:"decision"`
	RawResponse    string   `json:"raw_response,omitempty"`
}

type PreferenceRequest struct {
	Name           string `json:"name" validate:"required"`
	PreferredRoles string `json:"preferred_roles" validate:"required"`
}

type PreferenceResponse struct {
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	PreferredRoles string `json:"preferred_roles"`
}

// Report assembles the result payload for a completed screening. Optional
// columns that are still nil (a failed run that was later re-queued, for
// example) fall back to zero values rather than dereferencing nil.
func (s *Screening) Report() *ScreeningReport {
	report := &ScreeningReport{
		CandidateName:  NotAvailable,
		Graduation:     NotAvailable,
		Skills:         s.Skills,
		Certifications: s.Certifications,
		MatchedSkills:  s.MatchedSkills,
		MissingSkills:  s.MissingSkills,
	}

	if s.CandidateName != nil {
		report.CandidateName = *s.CandidateName
	}
	if s.Graduation != nil {
		report.Graduation = *s.Graduation
	}
	if s.Matched != nil {
		report.Matched = *s.Matched
	}
	if s.FitScore != nil {
		report.FitScore = *s.FitScore
	}
	if s.Recommendation != nil {
		report.Recommendation = *s.Recommendation
	}
	if s.Decision != nil {
		report.Decision = string(*s.Decision)
	}
	if s.RawResponse != nil {
		report.RawResponse = *s.RawResponse
	}

	return report
}

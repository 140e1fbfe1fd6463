package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileKindFromExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want FileKind
		ok   bool
	}{
		{".pdf", FileKindPDF, true},
		{".docx", FileKindDocx, true},
		{".txt", FileKindText, true},
		{".doc", "", false},
		{".exe", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			kind, ok := FileKindFromExtension(tt.ext)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestReportFromCompletedScreening(t *testing.T) {
	name := "John Doe"
	grad := "MSc CS, Stanford, 2020"
	matched := true
	score := 82
	rec := "Hire."
	decision := DecisionHire

	s := &Screening{
		Status:         StatusCompleted,
		CandidateName:  &name,
		Graduation:     &grad,
		Skills:         []string{"Python", "SQL"},
		Certifications: []string{"AWS ML Specialty"},
		MatchedSkills:  []string{"Python"},
		MissingSkills:  []string{"Spark"},
		Matched:        &matched,
		FitScore:       &score,
		Recommendation: &rec,
		Decision:       &decision,
	}

	report := s.Report()
	assert.Equal(t, "John Doe", report.CandidateName)
	assert.Equal(t, "MSc CS, Stanford, 2020", report.Graduation)
	assert.Equal(t, []string{"Python", "SQL"}, report.Skills)
	assert.True(t, report.Matched)
	assert.Equal(t, 82, report.FitScore)
	assert.Equal(t, "Hire.", report.Recommendation)
	assert.Equal(t, "hire", report.Decision)
}

func TestReportWithNilFieldsUsesDefaults(t *testing.T) {
	s := &Screening{Status: StatusCompleted}

	report := s.Report()
	assert.Equal(t, NotAvailable, report.CandidateName)
	assert.Equal(t, NotAvailable, report.Graduation)
	assert.False(t, report.Matched)
	assert.Zero(t, report.FitScore)
	assert.Empty(t, report.Recommendation)
	assert.Empty(t, report.Decision)
}

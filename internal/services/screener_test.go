package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gita006/ResumeVision/internal/models"
	"github.com/gita006/ResumeVision/internal/repositories"
)

// fakeGemini returns canned replies keyed on prompt content, so each pipeline
// step can be scripted independently.
type fakeGemini struct {
	profileReply   string
	matchReply     string
	scoreReply     string
	recommendReply string
	calls          []string
}

func (f *fakeGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return []float32{0.1, 0.2, 0.3}, nil
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	switch {
	case strings.Contains(prompt, "Extract the following information"):
		f.calls = append(f.calls, "extract")
		return f.profileReply, nil
	case strings.Contains(prompt, "Check if the candidate matches"):
		f.calls = append(f.calls, "match")
		return f.matchReply, nil
	case strings.Contains(prompt, "fit score as an integer"):
		f.calls = append(f.calls, "score")
		return f.scoreReply, nil
	case strings.Contains(prompt, "final assessment"):
		f.calls = append(f.calls, "recommend")
		return f.recommendReply, nil
	default:
		return "", fmt.Errorf("unexpected prompt: %s", prompt)
	}
}

func (f *fakeGemini) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	return f.GenerateText(ctx, prompt, temperature)
}

type fakeQdrant struct {
	results []SearchResult
}

func (f *fakeQdrant) InitCollection() error { return nil }
func (f *fakeQdrant) UpsertChunk(ctx context.Context, jobID, text string, embedding []float32) error {
	return nil
}
func (f *fakeQdrant) SearchSimilar(ctx context.Context, queryEmbedding []float32, jobID string, limit int) ([]SearchResult, error) {
	return f.results, nil
}
func (f *fakeQdrant) DeleteJob(ctx context.Context, jobID string) error { return nil }

type fakeExtractor struct {
	text string
}

func (f *fakeExtractor) ExtractText(filePath string, kind models.FileKind) (string, error) {
	if f.text == "" {
		return "", fmt.Errorf("no text content found")
	}
	return f.text, nil
}

type fakeScreeningRepo struct {
	screening *models.Screening
	statuses  []models.ScreeningStatus
	result    *repositories.ScreeningUpdateData
	errorMsg  string
}

func (f *fakeScreeningRepo) Create(s *models.Screening) error { return nil }
func (f *fakeScreeningRepo) FindByID(id uuid.UUID) (*models.Screening, error) {
	if f.screening == nil {
		return nil, fmt.Errorf("screening not found")
	}
	return f.screening, nil
}
func (f *fakeScreeningRepo) UpdateStatus(id uuid.UUID, status models.ScreeningStatus) error {
	f.statuses = append(f.statuses, status)
	return nil
}
func (f *fakeScreeningRepo) UpdateResult(id uuid.UUID, data *repositories.ScreeningUpdateData) error {
	f.result = data
	f.statuses = append(f.statuses, models.StatusCompleted)
	return nil
}
func (f *fakeScreeningRepo) UpdateError(id uuid.UUID, msg string) error {
	f.errorMsg = msg
	f.statuses = append(f.statuses, models.StatusFailed)
	return nil
}
func (f *fakeScreeningRepo) FindPendingJobs(limit int) ([]models.Screening, error) {
	return nil, nil
}

type fakeResumeRepo struct {
	resume *models.Resume
}

func (f *fakeResumeRepo) Create(r *models.Resume) error { return nil }
func (f *fakeResumeRepo) FindByID(id uuid.UUID) (*models.Resume, error) {
	if f.resume == nil {
		return nil, fmt.Errorf("resume not found")
	}
	return f.resume, nil
}

type fakeJobRepo struct {
	job *models.Job
}

func (f *fakeJobRepo) Create(j *models.Job) error { return nil }
func (f *fakeJobRepo) FindByID(id uuid.UUID) (*models.Job, error) {
	if f.job == nil {
		return nil, fmt.Errorf("job not found")
	}
	return f.job, nil
}

func newScreenerFixture(gemini *fakeGemini) (*screenerService, *fakeScreeningRepo, uuid.UUID) {
	screeningID := uuid.New()
	resumeID := uuid.New()
	jobID := uuid.New()

	screeningRepo := &fakeScreeningRepo{
		screening: &models.Screening{
			ID:       screeningID,
			ResumeID: resumeID,
			JobID:    jobID,
			Status:   models.StatusQueued,
		},
	}
	resumeRepo := &fakeResumeRepo{
		resume: &models.Resume{ID: resumeID, FilePath: "/tmp/resume.txt", FileKind: models.FileKindText},
	}
	jobRepo := &fakeJobRepo{
		job: &models.Job{ID: jobID, Title: "Python Developer", Description: "Python and ML experience required."},
	}

	svc := NewScreenerService(
		screeningRepo,
		resumeRepo,
		jobRepo,
		gemini,
		&fakeQdrant{},
		&fakeExtractor{text: "John Doe\nSkills: Python, TensorFlow, SQL"},
		3,
	).(*screenerService)

	return svc, screeningRepo, screeningID
}

func TestScreenCandidateHire(t *testing.T) {
	gemini := &fakeGemini{
		profileReply:   `{"name":"John Doe","graduation":"MSc Computer Science, Stanford, 2020","skills":["Python","TensorFlow","SQL"],"certifications":["AWS ML Specialty"]}`,
		matchReply:     `{"matched_skills":["Python","TensorFlow"],"missing_skills":["Kubernetes"],"match":"Yes"}`,
		scoreReply:     `{"fit_score":82,"reasoning":"Strong overlap with core requirements."}`,
		recommendReply: "Strong candidate. Recommendation: Hire.",
	}

	svc, repo, id := newScreenerFixture(gemini)

	err := svc.ScreenCandidate(context.Background(), id)
	require.NoError(t, err)

	require.NotNil(t, repo.result)
	assert.Equal(t, "John Doe", *repo.result.CandidateName)
	assert.Equal(t, []string{"Python", "TensorFlow"}, repo.result.MatchedSkills)
	assert.Equal(t, []string{"Kubernetes"}, repo.result.MissingSkills)
	assert.True(t, *repo.result.Matched)
	assert.Equal(t, 82, *repo.result.FitScore)
	assert.Equal(t, "Strong candidate. Recommendation: Hire.", *repo.result.Recommendation)
	assert.Equal(t, models.DecisionHire, *repo.result.Decision)
	assert.Nil(t, repo.result.RawResponse)

	// All four LLM steps ran, in order.
	assert.Equal(t, []string{"extract", "match", "score", "recommend"}, gemini.calls)
	assert.Equal(t, []models.ScreeningStatus{models.StatusProcessing, models.StatusCompleted}, repo.statuses)
}

func TestScreenCandidateRejection(t *testing.T) {
	gemini := &fakeGemini{
		profileReply: `{"name":"Jane Roe","graduation":"BA History, 2015","skills":["Writing"],"certifications":[]}`,
		matchReply:   `{"matched_skills":[],"missing_skills":["Python","ML"],"match":"No"}`,
		scoreReply:   `{"fit_score":12,"reasoning":"Few relevant skills."}`,
	}

	svc, repo, id := newScreenerFixture(gemini)

	err := svc.ScreenCandidate(context.Background(), id)
	require.NoError(t, err)

	require.NotNil(t, repo.result)
	assert.False(t, *repo.result.Matched)
	assert.Equal(t, 12, *repo.result.FitScore)
	assert.Equal(t, RejectionText, *repo.result.Recommendation)
	assert.Equal(t, models.DecisionReject, *repo.result.Decision)

	// The recommendation LLM call is skipped for unmatched candidates.
	assert.Equal(t, []string{"extract", "match", "score"}, gemini.calls)
}

func TestScreenCandidateMalformedProfileFallsBack(t *testing.T) {
	gemini := &fakeGemini{
		profileReply:   "I could not find any structured data, sorry!",
		matchReply:     `{"matched_skills":["Python"],"missing_skills":[],"match":"Yes"}`,
		scoreReply:     `{"fit_score":55,"reasoning":"Partial information."}`,
		recommendReply: "Maybe.",
	}

	svc, repo, id := newScreenerFixture(gemini)

	err := svc.ScreenCandidate(context.Background(), id)
	require.NoError(t, err)

	require.NotNil(t, repo.result)
	assert.Equal(t, models.NotAvailable, *repo.result.CandidateName)
	assert.Equal(t, models.NotAvailable, *repo.result.Graduation)
	assert.Empty(t, repo.result.Skills)
	assert.Empty(t, repo.result.Certifications)

	// The unparseable reply is kept verbatim on the screening.
	require.NotNil(t, repo.result.RawResponse)
	assert.Equal(t, "I could not find any structured data, sorry!", *repo.result.RawResponse)
}

func TestScreenCandidateScoreClampedAbove100(t *testing.T) {
	gemini := &fakeGemini{
		profileReply:   `{"name":"John","graduation":"N/A","skills":["Go"],"certifications":[]}`,
		matchReply:     `{"matched_skills":["Go"],"missing_skills":[],"match":"Yes"}`,
		scoreReply:     `{"fit_score":140,"reasoning":"Overenthusiastic model."}`,
		recommendReply: "Hire.",
	}

	svc, repo, id := newScreenerFixture(gemini)

	err := svc.ScreenCandidate(context.Background(), id)
	require.NoError(t, err)

	require.NotNil(t, repo.result)
	assert.Equal(t, 100, *repo.result.FitScore)
}

func TestScreenCandidateMissingScoreFails(t *testing.T) {
	gemini := &fakeGemini{
		profileReply: `{"name":"John","graduation":"N/A","skills":["Go"],"certifications":[]}`,
		matchReply:   `{"matched_skills":["Go"],"missing_skills":[],"match":"Yes"}`,
		scoreReply:   `{"reasoning":"Forgot the number."}`,
	}

	svc, repo, id := newScreenerFixture(gemini)

	err := svc.ScreenCandidate(context.Background(), id)
	require.Error(t, err)
	assert.Contains(t, repo.errorMsg, "fit_score")
	assert.Contains(t, repo.statuses, models.StatusFailed)
}

func TestScreenCandidateMalformedMatchFails(t *testing.T) {
	gemini := &fakeGemini{
		profileReply: `{"name":"John","graduation":"N/A","skills":["Go"],"certifications":[]}`,
		matchReply:   "not json at all",
	}

	svc, repo, id := newScreenerFixture(gemini)

	err := svc.ScreenCandidate(context.Background(), id)
	require.Error(t, err)
	assert.Contains(t, repo.statuses, models.StatusFailed)
}

func TestClampFitScore(t *testing.T) {
	tests := []struct {
		name    string
		in      int
		want    int
		wantErr bool
	}{
		{"lower bound", 1, 1, false},
		{"upper bound", 100, 100, false},
		{"mid range", 50, 50, false},
		{"above range clamps", 250, 100, false},
		{"zero rejected", 0, 0, true},
		{"negative rejected", -5, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClampFitScore(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

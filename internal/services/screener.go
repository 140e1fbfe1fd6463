package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/gita006/ResumeVision/internal/models"
	"github.com/gita006/ResumeVision/internal/repositories"
)

type ScreenerService interface {
	ScreenCandidate(ctx context.Context, screeningID uuid.UUID) error
}

type screenerService struct {
	screeningRepo repositories.ScreeningRepository
	resumeRepo    repositories.ResumeRepository
	jobRepo       repositories.JobRepository
	geminiService GeminiService
	qdrantService QdrantService
	extractor     ExtractorService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewScreenerService(
	screeningRepo repositories.ScreeningRepository,
	resumeRepo repositories.ResumeRepository,
	jobRepo repositories.JobRepository,
	geminiService GeminiService,
	qdrantService QdrantService,
	extractor ExtractorService,
	maxRetries int,
) ScreenerService {
	return &screenerService{
		screeningRepo: screeningRepo,
		resumeRepo:    resumeRepo,
		jobRepo:       jobRepo,
		geminiService: geminiService,
		qdrantService: qdrantService,
		extractor:     extractor,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

// CandidateProfile is the JSON shape of the extraction step's LLM reply.
// RawResponse is set only when the reply could not be parsed and the profile
// was degraded to N/A values.
type CandidateProfile struct {
	Name           string   `json:"name"`
	Graduation     string   `json:"graduation"`
	Skills         []string `json:"skills"`
	Certifications []string `json:"certifications"`
	RawResponse    string   `json:"raw_response,omitempty"`
}

// SkillMatchResult is the JSON shape of the matching step's LLM reply.
type SkillMatchResult struct {
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Match         string   `json:"match"`
}

// ScoreResult is the JSON shape of the scoring step's LLM reply.
type ScoreResult struct {
	FitScore  int    `json:"fit_score"`
	Reasoning string `json:"reasoning"`
}

// RejectionText is recorded as the recommendation for unmatched candidates.
const RejectionText = "You are not matched."

// ScreenCandidate runs the four screening steps for one queued screening,
// strictly in sequence: extract, match, score, recommend.
func (s *screenerService) ScreenCandidate(ctx context.Context, screeningID uuid.UUID) error {
	if err := s.screeningRepo.UpdateStatus(screeningID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting screening %s\n", screeningID)

	screening, err := s.screeningRepo.FindByID(screeningID)
	if err != nil {
		s.screeningRepo.UpdateError(screeningID, err.Error())
		return fmt.Errorf("failed to get screening: %w", err)
	}

	resume, err := s.resumeRepo.FindByID(screening.ResumeID)
	if err != nil {
		s.screeningRepo.UpdateError(screeningID, fmt.Sprintf("resume not found: %v", err))
		return fmt.Errorf("failed to get resume: %w", err)
	}

	job, err := s.jobRepo.FindByID(screening.JobID)
	if err != nil {
		s.screeningRepo.UpdateError(screeningID, fmt.Sprintf("job not found: %v", err))
		return fmt.Errorf("failed to get job: %w", err)
	}

	// Step 1: Extract resume text and candidate profile
	log.Println("📄 Extracting resume text...")
	resumeText, err := s.extractor.ExtractText(resume.FilePath, resume.FileKind)
	if err != nil {
		s.screeningRepo.UpdateError(screeningID, fmt.Sprintf("failed to extract resume text: %v", err))
		return fmt.Errorf("failed to extract resume text: %w", err)
	}
	resumeText = CleanText(resumeText)

	log.Println("🤖 Extracting candidate profile with LLM...")
	profile, err := s.extractProfile(ctx, resumeText)
	if err != nil {
		s.screeningRepo.UpdateError(screeningID, fmt.Sprintf("failed to extract candidate profile: %v", err))
		return fmt.Errorf("failed to extract candidate profile: %w", err)
	}

	// Step 2: Match skills against the job description
	log.Println("🔍 Retrieving job requirement context...")
	ragContext, err := s.retrieveContext(ctx, profile, resumeText, job)
	if err != nil {
		log.Printf("⚠️  Warning: failed to retrieve job context: %v\n", err)
		ragContext = ""
	}

	log.Println("🤖 Matching skills with LLM...")
	match, err := s.matchSkills(ctx, profile, resumeText, job, ragContext)
	if err != nil {
		s.screeningRepo.UpdateError(screeningID, fmt.Sprintf("failed to match skills: %v", err))
		return fmt.Errorf("failed to match skills: %w", err)
	}
	matched := strings.EqualFold(strings.TrimSpace(match.Match), "yes")

	// Step 3: Score the candidate
	log.Println("🤖 Scoring candidate with LLM...")
	score, err := s.scoreCandidate(ctx, profile, match, job)
	if err != nil {
		s.screeningRepo.UpdateError(screeningID, fmt.Sprintf("failed to score candidate: %v", err))
		return fmt.Errorf("failed to score candidate: %w", err)
	}

	// Step 4: Generate the recommendation
	var recommendation string
	decision := models.DecisionReject
	if matched {
		log.Println("🤖 Generating recommendation with LLM...")
		recommendation, err = s.recommend(ctx, profile, match, score.FitScore, job)
		if err != nil {
			s.screeningRepo.UpdateError(screeningID, fmt.Sprintf("failed to generate recommendation: %v", err))
			return fmt.Errorf("failed to generate recommendation: %w", err)
		}
		decision = models.DecisionHire
	} else {
		recommendation = RejectionText
	}

	// Save results
	log.Println("💾 Saving screening results...")
	updateData := &repositories.ScreeningUpdateData{
		CandidateName:  &profile.Name,
		Graduation:     &profile.Graduation,
		Skills:         profile.Skills,
		Certifications: profile.Certifications,
		MatchedSkills:  match.MatchedSkills,
		MissingSkills:  match.MissingSkills,
		Matched:        &matched,
		FitScore:       &score.FitScore,
		Recommendation: &recommendation,
		Decision:       &decision,
	}
	if profile.RawResponse != "" {
		updateData.RawResponse = &profile.RawResponse
	}

	if err := s.screeningRepo.UpdateResult(screeningID, updateData); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	log.Printf("✅ Screening %s completed\n", screeningID)
	return nil
}

func (s *screenerService) extractProfile(ctx context.Context, resumeText string) (*CandidateProfile, error) {
	prompt := s.promptBuilder.BuildProfileExtractionPrompt(resumeText)

	response, err := s.geminiService.GenerateTextWithRetry(ctx, prompt, 0.2, s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate profile extraction: %w", err)
	}

	var profile CandidateProfile
	if err := parseJSONResponse(response, &profile); err != nil {
		// Imperfect JSON from the model degrades to an N/A profile rather
		// than failing the whole screening; the raw reply is kept for the
		// result so nothing is silently lost.
		log.Printf("⚠️  Malformed extraction reply, falling back to N/A profile: %v", err)
		fallback := fallbackProfile()
		fallback.RawResponse = response
		return fallback, nil
	}

	normalizeProfile(&profile)
	return &profile, nil
}

func fallbackProfile() *CandidateProfile {
	return &CandidateProfile{
		Name:           models.NotAvailable,
		Graduation:     models.NotAvailable,
		Skills:         []string{},
		Certifications: []string{},
	}
}

// normalizeProfile fills gaps the model left: empty strings become N/A and
// nil lists become empty lists.
func normalizeProfile(profile *CandidateProfile) {
	if strings.TrimSpace(profile.Name) == "" {
		profile.Name = models.NotAvailable
	}
	if strings.TrimSpace(profile.Graduation) == "" {
		profile.Graduation = models.NotAvailable
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if profile.Certifications == nil {
		profile.Certifications = []string{}
	}
}

func (s *screenerService) retrieveContext(ctx context.Context, profile *CandidateProfile, resumeText string, job *models.Job) (string, error) {
	queryText := strings.Join(profile.Skills, ", ")
	if queryText == "" {
		queryText = resumeText
	}

	embedding, err := s.geminiService.GenerateEmbedding(ctx, queryText)
	if err != nil {
		return "", fmt.Errorf("failed to generate query embedding: %w", err)
	}

	results, err := s.qdrantService.SearchSimilar(ctx, embedding, job.ID.String(), 3)
	if err != nil {
		return "", fmt.Errorf("failed to search job chunks: %w", err)
	}

	return FormatRAGContext(results), nil
}

func (s *screenerService) matchSkills(ctx context.Context, profile *CandidateProfile, resumeText string, job *models.Job, ragContext string) (*SkillMatchResult, error) {
	prompt := s.promptBuilder.BuildSkillMatchPrompt(profile.Skills, resumeText, job.Title, job.Description, ragContext)

	response, err := s.geminiService.GenerateTextWithRetry(ctx, prompt, 0.3, s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate skill match: %w", err)
	}

	var result SkillMatchResult
	if err := parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse skill match response: %w", err)
	}

	if result.MatchedSkills == nil {
		result.MatchedSkills = []string{}
	}
	if result.MissingSkills == nil {
		result.MissingSkills = []string{}
	}

	return &result, nil
}

func (s *screenerService) scoreCandidate(ctx context.Context, profile *CandidateProfile, match *SkillMatchResult, job *models.Job) (*ScoreResult, error) {
	prompt := s.promptBuilder.BuildScorePrompt(profile.Skills, match.MatchedSkills, match.MissingSkills, job.Title, job.Description)

	response, err := s.geminiService.GenerateTextWithRetry(ctx, prompt, 0.3, s.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate score: %w", err)
	}

	var result ScoreResult
	if err := parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse score response: %w", err)
	}

	clamped, err := ClampFitScore(result.FitScore)
	if err != nil {
		return nil, err
	}
	result.FitScore = clamped

	return &result, nil
}

// ClampFitScore enforces the 1-100 fit score range. A zero or negative value
// means the model never produced a score, which is a hard error; values above
// 100 are clamped.
func ClampFitScore(score int) (int, error) {
	if score <= 0 {
		return 0, fmt.Errorf("missing or invalid fit_score: %d", score)
	}
	if score > 100 {
		return 100, nil
	}
	return score, nil
}

func (s *screenerService) recommend(ctx context.Context, profile *CandidateProfile, match *SkillMatchResult, fitScore int, job *models.Job) (string, error) {
	prompt := s.promptBuilder.BuildRecommendationPrompt(
		profile.Name,
		profile.Graduation,
		profile.Skills,
		profile.Certifications,
		match.MatchedSkills,
		match.MissingSkills,
		fitScore,
		job.Title,
	)

	recommendation, err := s.geminiService.GenerateTextWithRetry(ctx, prompt, 0.5, s.maxRetries)
	if err != nil {
		return "", fmt.Errorf("failed to generate recommendation: %w", err)
	}

	return strings.TrimSpace(recommendation), nil
}

func parseJSONResponse(response string, target interface{}) error {
	// LLM might wrap the JSON in markdown
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildProfileExtractionPrompt creates the prompt for the extraction step.
func (pb *PromptBuilder) BuildProfileExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`You are a resume screening assistant. Extract the following information from the resume text:
- Candidate Name
- Graduation (Degree, University, Year)
- Skills (list them)
- Certifications (list them)

Return your response in the following JSON format:
{
  "name": "<candidate name>",
  "graduation": "<degree, university, year>",
  "skills": ["<skill>", ...],
  "certifications": ["<certification>", ...]
}

If information is not found, use "N/A" for text fields and an empty list for list fields.
Base all reasoning only on the provided text. Do not make up data or assume experience not explicitly mentioned.
Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.

Resume Text:
%s`, resumeText)
}

// BuildSkillMatchPrompt creates the prompt for the skill-matching step.
func (pb *PromptBuilder) BuildSkillMatchPrompt(skills []string, resumeText, jobTitle, jobDescription, ragContext string) string {
	return fmt.Sprintf(`You are a resume screening assistant. Check if the candidate matches the job requirements.

JOB TITLE:
%s

JOB DESCRIPTION:
%s

RELEVANT JOB REQUIREMENT PASSAGES:
%s

CANDIDATE SKILLS:
%s

CANDIDATE RESUME:
%s

Compare the candidate's skills and experience against the job requirements.

Return your response in the following JSON format:
{
  "matched_skills": ["<skill present in both resume and requirements>", ...],
  "missing_skills": ["<required skill absent from the resume>", ...],
  "match": "<Yes or No>"
}

Answer "Yes" only when the candidate covers the essential requirements of the role.
Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.`,
		jobTitle, jobDescription, ragContext, strings.Join(skills, ", "), resumeText)
}

// BuildScorePrompt creates the prompt for the scoring step.
func (pb *PromptBuilder) BuildScorePrompt(skills, matchedSkills, missingSkills []string, jobTitle, jobDescription string) string {
	return fmt.Sprintf(`You are an expert HR recruiter scoring a candidate's fit for a %s position.

JOB DESCRIPTION:
%s

CANDIDATE SKILLS:
%s

MATCHED SKILLS:
%s

MISSING SKILLS:
%s

Assign an overall candidate fit score as an integer from 1 to 100, where 1 means no fit at all and 100 means a perfect fit.

Return your response in the following JSON format:
{
  "fit_score": <1-100>,
  "reasoning": "<2-3 sentences justifying the score>"
}

Be objective. Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.`,
		jobTitle, jobDescription,
		strings.Join(skills, ", "),
		strings.Join(matchedSkills, ", "),
		strings.Join(missingSkills, ", "))
}

// BuildRecommendationPrompt creates the prompt for the final recommendation step.
func (pb *PromptBuilder) BuildRecommendationPrompt(name, graduation string, skills, certifications, matchedSkills, missingSkills []string, fitScore int, jobTitle string) string {
	return fmt.Sprintf(`You are an expert technical hiring manager making a final assessment of a candidate for a %s position.

CANDIDATE DETAILS:
- Name: %s
- Graduation: %s
- Skills: %s
- Certifications: %s

SCREENING RESULTS:
- Fit Score: %d (out of 100)
- Matched Skills: %s
- Missing Skills: %s

Provide a concise hiring recommendation (3-5 sentences) that includes:
1. A clean summary of the candidate details (name, graduation, skills, certifications)
2. Key gaps or areas for improvement
3. Final recommendation (Strong Hire / Hire / Maybe / No Hire)

Return ONLY the recommendation text, no JSON format needed. Be direct and actionable.`,
		jobTitle, name, graduation,
		strings.Join(skills, ", "),
		strings.Join(certifications, ", "),
		fitScore,
		strings.Join(matchedSkills, ", "),
		strings.Join(missingSkills, ", "))
}

// FormatRAGContext renders retrieved job-description chunks for prompt use.
func FormatRAGContext(results []SearchResult) string {
	if len(results) == 0 {
		return "No relevant context found."
	}

	var parts []string
	for i, result := range results {
		parts = append(parts, fmt.Sprintf("--- Context %d (Score: %.2f) ---\n%s",
			i+1, result.Score, strings.TrimSpace(result.Text)))
	}

	return strings.Join(parts, "\n\n")
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	// Find JSON object or array boundaries
	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return text
}

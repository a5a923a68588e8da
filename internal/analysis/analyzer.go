package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jonathan/cv-studio/internal/prompts"
	"github.com/jonathan/cv-studio/internal/types"
)

// requestTimeout bounds every analysis call. The same bound applies to both
// flows.
const requestTimeout = 30 * time.Second

// ReviewResult is a validated, clamped CV review assessment.
type ReviewResult struct {
	Score    int
	Feedback types.ReviewFeedback
}

// MatchResult is a validated, clamped job match assessment.
type MatchResult struct {
	MatchScore      float64
	MatchingSkills  []string
	MissingSkills   []string
	KeywordsToAdd   []string
	Suggestions     string
	Recommendations []string
}

// Analyzer runs the two analysis flows against a generative-text client.
// It does not retry; the caller re-triggers manually on failure.
type Analyzer struct {
	client Client
}

// NewAnalyzer creates an analyzer over the given client.
func NewAnalyzer(client Client) *Analyzer {
	return &Analyzer{client: client}
}

// ReviewCV scores the CV text against the ATS rubric.
func (a *Analyzer) ReviewCV(ctx context.Context, cvText string) (*ReviewResult, error) {
	prompt := prompts.Format(prompts.MustGet("analysis.json", "cv-review"), map[string]string{
		"CVText": cvText,
	})

	jsonText, err := a.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if err := validateShape(reviewResultSchema, jsonText); err != nil {
		return nil, err
	}

	var raw struct {
		Score    float64              `json:"score"`
		Feedback types.ReviewFeedback `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return nil, &FormatError{Message: "failed to parse analysis JSON", Cause: err}
	}

	return &ReviewResult{Score: clampScore(raw.Score), Feedback: raw.Feedback}, nil
}

// MatchJob compares the CV text against a job description.
func (a *Analyzer) MatchJob(ctx context.Context, cvText, jobDescription string) (*MatchResult, error) {
	prompt := prompts.Format(prompts.MustGet("analysis.json", "job-match"), map[string]string{
		"CVText":         cvText,
		"JobDescription": jobDescription,
	})

	jsonText, err := a.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if err := validateShape(matchResultSchema, jsonText); err != nil {
		return nil, err
	}

	var raw struct {
		MatchScore      float64  `json:"matchScore"`
		MatchingSkills  []string `json:"matchingSkills"`
		MissingSkills   []string `json:"missingSkills"`
		KeywordsToAdd   []string `json:"keywordsToAdd"`
		Suggestions     string   `json:"suggestions"`
		Recommendations []string `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return nil, &FormatError{Message: "failed to parse analysis JSON", Cause: err}
	}

	return &MatchResult{
		MatchScore:      clampMatchScore(raw.MatchScore),
		MatchingSkills:  raw.MatchingSkills,
		MissingSkills:   raw.MissingSkills,
		KeywordsToAdd:   raw.KeywordsToAdd,
		Suggestions:     raw.Suggestions,
		Recommendations: raw.Recommendations,
	}, nil
}

// generate runs the bounded model call and extracts the embedded JSON
// object from its response.
func (a *Analyzer) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	text, err := a.client.GenerateContent(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &TimeoutError{Seconds: int(requestTimeout.Seconds())}
		}
		return "", &UpstreamError{Message: "analysis request failed", Cause: err}
	}

	return ExtractJSONObject(text)
}

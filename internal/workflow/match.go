package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/cv-studio/internal/extraction"
	"github.com/jonathan/cv-studio/internal/identity"
	"github.com/jonathan/cv-studio/internal/store"
	"github.com/jonathan/cv-studio/internal/types"
)

// MatchWorkflow drives the job match flow: validate the CV upload and job
// description, extract the CV text, run the AI comparison, and append the
// result to the match history.
type MatchWorkflow struct {
	extractor Extractor
	analyzer  Analyzer
	matches   *store.JobMatchStore
}

// NewMatchWorkflow wires a job match workflow.
func NewMatchWorkflow(extractor Extractor, analyzer Analyzer, matches *store.JobMatchStore) *MatchWorkflow {
	return &MatchWorkflow{extractor: extractor, analyzer: analyzer, matches: matches}
}

// Run executes the match flow for one upload against a pasted job
// description. Only PDF uploads are accepted. On persistence failure the
// assessment is still returned alongside the error.
func (w *MatchWorkflow) Run(ctx context.Context, up *extraction.Upload, jobDescription string, onEvent EventFunc) (*types.JobMatch, error) {
	if strings.TrimSpace(jobDescription) == "" {
		err := &ValidationError{Message: "please provide a job description"}
		emit(onEvent, StateFailed, 0, err.Error())
		return nil, err
	}
	if err := validateUpload(up, matchMIMETypes); err != nil {
		emit(onEvent, StateFailed, 0, err.Error())
		return nil, err
	}

	emit(onEvent, StateExtracting, 0, "Extracting text from "+up.Name)
	text, err := w.extractor.Extract(ctx, up, func(percent int) {
		emit(onEvent, StateExtracting, percent, "")
	})
	if err != nil {
		emit(onEvent, StateFailed, 0, err.Error())
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}
	if len(strings.TrimSpace(text)) < minExtractedChars {
		err := &ValidationError{Message: "could not extract sufficient text from the document"}
		emit(onEvent, StateFailed, 0, err.Error())
		return nil, err
	}

	emit(onEvent, StateAnalyzing, 100, "Comparing CV against job description")
	result, err := w.analyzer.MatchJob(ctx, text, jobDescription)
	if err != nil {
		emit(onEvent, StateFailed, 0, err.Error())
		return nil, fmt.Errorf("AI analysis failed: %w", err)
	}

	match := &types.JobMatch{
		ID:              identity.NewID(),
		CVID:            "uploaded-" + identity.NewID(),
		CVFileName:      up.Name,
		JobDescription:  jobDescription,
		MatchScore:      result.MatchScore,
		MatchingSkills:  result.MatchingSkills,
		MissingSkills:   result.MissingSkills,
		KeywordsToAdd:   result.KeywordsToAdd,
		Suggestions:     result.Suggestions,
		Recommendations: result.Recommendations,
	}
	if _, err := w.matches.Append(match); err != nil {
		emit(onEvent, StateFailed, 0, err.Error())
		return match, err
	}

	emit(onEvent, StateComplete, 100, "Job match complete")
	return match, nil
}

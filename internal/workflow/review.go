package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/cv-studio/internal/analysis"
	"github.com/jonathan/cv-studio/internal/extraction"
	"github.com/jonathan/cv-studio/internal/identity"
	"github.com/jonathan/cv-studio/internal/store"
	"github.com/jonathan/cv-studio/internal/types"
)

// Extractor converts an upload to plain text, reporting progress.
type Extractor interface {
	Extract(ctx context.Context, up *extraction.Upload, onProgress extraction.ProgressFunc) (string, error)
}

// Analyzer runs the AI assessment flows.
type Analyzer interface {
	ReviewCV(ctx context.Context, cvText string) (*analysis.ReviewResult, error)
	MatchJob(ctx context.Context, cvText, jobDescription string) (*analysis.MatchResult, error)
}

// ReviewWorkflow drives the upload-and-review flow: validate the upload,
// extract its text, run the AI review, and append the result to the review
// history.
type ReviewWorkflow struct {
	extractor Extractor
	analyzer  Analyzer
	reviews   *store.ReviewStore
}

// NewReviewWorkflow wires a review workflow.
func NewReviewWorkflow(extractor Extractor, analyzer Analyzer, reviews *store.ReviewStore) *ReviewWorkflow {
	return &ReviewWorkflow{extractor: extractor, analyzer: analyzer, reviews: reviews}
}

// Run executes the review flow for one upload. On persistence failure the
// assessment is still returned alongside the error so the caller can show it.
func (w *ReviewWorkflow) Run(ctx context.Context, up *extraction.Upload, onEvent EventFunc) (*types.CVReview, error) {
	if err := validateUpload(up, reviewMIMETypes); err != nil {
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

	emit(onEvent, StateAnalyzing, 100, "Analyzing CV content")
	result, err := w.analyzer.ReviewCV(ctx, text)
	if err != nil {
		emit(onEvent, StateFailed, 0, err.Error())
		return nil, fmt.Errorf("AI analysis failed: %w", err)
	}

	review := &types.CVReview{
		ID:       identity.NewID(),
		CVID:     "uploaded-" + identity.NewID(),
		Score:    result.Score,
		Feedback: result.Feedback,
	}
	if _, err := w.reviews.Append(review); err != nil {
		emit(onEvent, StateFailed, 0, err.Error())
		return review, err
	}

	emit(onEvent, StateComplete, 100, "Review complete")
	return review, nil
}

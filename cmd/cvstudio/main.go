// Package main provides the entry point for the CV Studio CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-studio/internal/analysis"
	"github.com/jonathan/cv-studio/internal/config"
	"github.com/jonathan/cv-studio/internal/extraction"
	"github.com/jonathan/cv-studio/internal/store"
	"github.com/jonathan/cv-studio/internal/workflow"
)

var rootCmd = &cobra.Command{
	Use:   "cvstudio",
	Short: "CV Studio authoring and analysis tool",
	Long:  "CV Studio manages CVs, cover letters, and your profile locally, and runs AI-assisted CV reviews and job match analyses on uploaded documents.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app bundles the wired stores and workflows for command handlers.
type app struct {
	cfg      *config.Config
	profiles *store.ProfileStore
	cvs      *store.CVStore
	letters  *store.CoverLetterStore
	reviews  *store.ReviewStore
	matches  *store.JobMatchStore
}

// newApp loads configuration and wires the stores over the data directory.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	backend := store.NewFileBackend(cfg.DataDir)
	return &app{
		cfg:      cfg,
		profiles: store.NewProfileStore(backend),
		cvs:      store.NewCVStore(backend),
		letters:  store.NewCoverLetterStore(backend),
		reviews:  store.NewReviewStore(backend),
		matches:  store.NewJobMatchStore(backend),
	}, nil
}

// newExtractor builds the extraction service. PDF support is enabled only
// when the conversion API key is configured.
func (a *app) newExtractor() *extraction.Service {
	var pdf *extraction.PDFCoClient
	if a.cfg.PDFCoAPIKey != "" {
		pdf = extraction.NewPDFCoClient(a.cfg.PDFCoAPIKey)
	}
	return extraction.NewService(pdf)
}

// newAnalyzer builds the AI analyzer. Returns an error when the API key is
// missing; callers should surface it before starting work.
func (a *app) newAnalyzer(ctx context.Context) (*analysis.Analyzer, func(), error) {
	if a.cfg.GeminiAPIKey == "" {
		return nil, nil, fmt.Errorf("AI analysis requires %s to be set", config.EnvGeminiAPIKey)
	}
	client, err := analysis.NewGeminiClient(ctx, a.cfg.GeminiAPIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	return analysis.NewAnalyzer(client), func() { _ = client.Close() }, nil
}

// printEvents returns an event callback that writes workflow progress to
// stderr, keeping stdout clean for results.
func printEvents() workflow.EventFunc {
	lastPercent := -1
	return func(ev workflow.Event) {
		switch ev.State {
		case workflow.StateExtracting:
			if ev.Message != "" {
				fmt.Fprintf(os.Stderr, "%s\n", ev.Message)
			}
			if ev.Progress != lastPercent {
				lastPercent = ev.Progress
				fmt.Fprintf(os.Stderr, "  extracting... %d%%\n", ev.Progress)
			}
		case workflow.StateAnalyzing:
			fmt.Fprintf(os.Stderr, "%s\n", ev.Message)
		case workflow.StateFailed:
			fmt.Fprintf(os.Stderr, "failed: %s\n", ev.Message)
		}
	}
}

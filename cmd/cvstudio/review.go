package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-studio/internal/extraction"
	"github.com/jonathan/cv-studio/internal/observability"
	"github.com/jonathan/cv-studio/internal/workflow"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Run an AI review of an uploaded CV document",
	Long:  "Upload a CV document (PDF, Word, spreadsheet, or plain text), extract its text, and run an AI review that scores it and suggests improvements. Each review is appended to the review history.",
	RunE:  runReview,
}

var (
	reviewFile    string
	reviewHistory bool
)

func init() {
	reviewCmd.Flags().StringVarP(&reviewFile, "file", "f", "", "Path to the CV document to review")
	reviewCmd.Flags().BoolVar(&reviewHistory, "history", false, "Print the stored review history instead of running a review")

	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if reviewHistory {
		reviews := a.reviews.GetAll()
		if len(reviews) == 0 {
			fmt.Println("No reviews yet.")
			return nil
		}
		for _, review := range reviews {
			fmt.Printf("%s  score %d/100  (%s)\n", review.ID, review.Score, review.CreatedAt)
		}
		return nil
	}

	if reviewFile == "" {
		return fmt.Errorf("--file is required")
	}

	up, err := extraction.NewUploadFromFile(reviewFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	analyzer, closeClient, err := a.newAnalyzer(ctx)
	if err != nil {
		return err
	}
	defer closeClient()

	w := workflow.NewReviewWorkflow(a.newExtractor(), analyzer, a.reviews)
	review, err := w.Run(ctx, up, printEvents())
	if err != nil {
		if review != nil {
			// Persist failed but the assessment is usable; show it anyway.
			fmt.Fprintf(os.Stderr, "Warning: review was not saved: %v\n", err)
		} else {
			return err
		}
	}

	observability.NewPrinter(os.Stdout).PrintReview(review)
	return nil
}

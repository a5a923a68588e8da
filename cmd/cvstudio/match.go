package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-studio/internal/extraction"
	"github.com/jonathan/cv-studio/internal/observability"
	"github.com/jonathan/cv-studio/internal/workflow"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Compare an uploaded CV against a job description",
	Long:  "Upload a CV in PDF format and compare it against a pasted job description. The AI reports a match score, matching and missing skills, and keywords to add. Each match is appended to the match history.",
	RunE:  runMatch,
}

var (
	matchFile    string
	matchJobFile string
	matchJobText string
	matchHistory bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchFile, "file", "f", "", "Path to the CV document (PDF only)")
	matchCmd.Flags().StringVar(&matchJobFile, "job-file", "", "Path to a text file containing the job description")
	matchCmd.Flags().StringVar(&matchJobText, "job-text", "", "Job description text (alternative to --job-file)")
	matchCmd.Flags().BoolVar(&matchHistory, "history", false, "Print the stored match history instead of running a match")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if matchHistory {
		matches := a.matches.GetAll()
		if len(matches) == 0 {
			fmt.Println("No job matches yet.")
			return nil
		}
		for _, match := range matches {
			fmt.Printf("%s  %.1f%%  %s  (%s)\n", match.ID, match.MatchScore, match.CVFileName, match.CreatedAt)
		}
		return nil
	}

	if matchFile == "" {
		return fmt.Errorf("--file is required")
	}
	if matchJobFile != "" && matchJobText != "" {
		return fmt.Errorf("--job-file and --job-text are mutually exclusive")
	}

	jobDescription := matchJobText
	if matchJobFile != "" {
		data, err := os.ReadFile(matchJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job description file: %w", err)
		}
		jobDescription = string(data)
	}

	up, err := extraction.NewUploadFromFile(matchFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	analyzer, closeClient, err := a.newAnalyzer(ctx)
	if err != nil {
		return err
	}
	defer closeClient()

	w := workflow.NewMatchWorkflow(a.newExtractor(), analyzer, a.matches)
	match, err := w.Run(ctx, up, jobDescription, printEvents())
	if err != nil {
		if match != nil {
			fmt.Fprintf(os.Stderr, "Warning: match was not saved: %v\n", err)
		} else {
			return err
		}
	}

	observability.NewPrinter(os.Stdout).PrintMatch(match)
	return nil
}

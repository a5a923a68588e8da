package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-studio/internal/workflow"
)

var letterCmd = &cobra.Command{
	Use:   "letter",
	Short: "Manage cover letters",
}

var letterGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a cover letter draft for a job",
	Long:  "Generate a cover letter draft from a job title, company name, and job description. The signature uses your profile name when a profile exists.",
	RunE:  runLetterGenerate,
}

var letterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored cover letters",
	RunE:  runLetterList,
}

var letterShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored cover letter",
	Args:  cobra.ExactArgs(1),
	RunE:  runLetterShow,
}

var letterDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored cover letter",
	Args:  cobra.ExactArgs(1),
	RunE:  runLetterDelete,
}

var (
	letterName     string
	letterJobTitle string
	letterCompany  string
	letterJobFile  string
	letterJobText  string
	letterCVID     string
)

func init() {
	letterGenerateCmd.Flags().StringVar(&letterName, "name", "", "Display name for the letter (defaults to \"<title> at <company>\")")
	letterGenerateCmd.Flags().StringVar(&letterJobTitle, "job-title", "", "Job title to apply for")
	letterGenerateCmd.Flags().StringVar(&letterCompany, "company", "", "Company name")
	letterGenerateCmd.Flags().StringVar(&letterJobFile, "job-file", "", "Path to a text file containing the job description")
	letterGenerateCmd.Flags().StringVar(&letterJobText, "job-text", "", "Job description text (alternative to --job-file)")
	letterGenerateCmd.Flags().StringVar(&letterCVID, "cv-id", "", "Optional id of the CV this letter accompanies")

	letterCmd.AddCommand(letterGenerateCmd)
	letterCmd.AddCommand(letterListCmd)
	letterCmd.AddCommand(letterShowCmd)
	letterCmd.AddCommand(letterDeleteCmd)
	rootCmd.AddCommand(letterCmd)
}

func runLetterGenerate(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if letterJobFile != "" && letterJobText != "" {
		return fmt.Errorf("--job-file and --job-text are mutually exclusive")
	}
	jobDescription := letterJobText
	if letterJobFile != "" {
		data, err := os.ReadFile(letterJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job description file: %w", err)
		}
		jobDescription = string(data)
	}

	w := workflow.NewLetterWorkflow(a.profiles, a.letters)
	letter, err := w.Generate(workflow.LetterInput{
		Name:           letterName,
		CVID:           letterCVID,
		JobTitle:       letterJobTitle,
		CompanyName:    letterCompany,
		JobDescription: jobDescription,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Saved cover letter %s (%s)\n\n", letter.ID, letter.Name)
	fmt.Println(letter.Content)
	return nil
}

func runLetterList(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	letters := a.letters.GetAll()
	if len(letters) == 0 {
		fmt.Println("No cover letters yet.")
		return nil
	}
	for _, letter := range letters {
		fmt.Printf("%s  %s  (updated %s)\n", letter.ID, letter.Name, letter.UpdatedAt)
	}
	return nil
}

func runLetterShow(_ *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	letter, ok := a.letters.GetByID(args[0])
	if !ok {
		return fmt.Errorf("cover letter not found: %s", args[0])
	}
	fmt.Println(letter.Content)
	return nil
}

func runLetterDelete(_ *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.letters.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted cover letter %s\n", args[0])
	return nil
}

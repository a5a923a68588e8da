package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-studio/internal/identity"
	"github.com/jonathan/cv-studio/internal/types"
)

var cvCmd = &cobra.Command{
	Use:   "cv",
	Short: "Manage stored CVs",
}

var cvListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored CVs",
	RunE:  runCVList,
}

var cvImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a CV from a JSON file",
	Long:  "Import a structured CV from a JSON file. A CV with a matching id is replaced; a CV without an id is added as new.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCVImport,
}

var cvExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Print a stored CV as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runCVExport,
}

var cvDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored CV",
	Long:  "Delete a stored CV. Reviews, matches, and cover letters referencing it are kept.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCVDelete,
}

func init() {
	cvCmd.AddCommand(cvListCmd)
	cvCmd.AddCommand(cvImportCmd)
	cvCmd.AddCommand(cvExportCmd)
	cvCmd.AddCommand(cvDeleteCmd)
	rootCmd.AddCommand(cvCmd)
}

func runCVList(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	cvs := a.cvs.GetAll()
	if len(cvs) == 0 {
		fmt.Println("No CVs yet.")
		return nil
	}
	for _, cv := range cvs {
		fmt.Printf("%s  %s  (updated %s)\n", cv.ID, cv.Name, cv.UpdatedAt)
	}
	return nil
}

func runCVImport(_ *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}

	var cv types.CV
	if err := json.Unmarshal(data, &cv); err != nil {
		return fmt.Errorf("failed to parse CV JSON: %w", err)
	}
	if cv.ID == "" {
		cv.ID = identity.NewID()
	}

	saved, err := a.cvs.Save(&cv)
	if err != nil {
		return err
	}
	fmt.Printf("Saved CV %s (%s)\n", saved.ID, saved.Name)
	return nil
}

func runCVExport(_ *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	cv, ok := a.cvs.GetByID(args[0])
	if !ok {
		return fmt.Errorf("CV not found: %s", args[0])
	}

	data, err := json.MarshalIndent(cv, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal CV: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func runCVDelete(_ *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if err := a.cvs.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted CV %s\n", args[0])
	return nil
}

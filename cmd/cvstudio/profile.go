package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-studio/internal/observability"
	"github.com/jonathan/cv-studio/internal/workflow"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your user profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored profile",
	RunE:  runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the profile",
	Long:  "Create the profile if none exists, or update the existing one. Name and a valid email are required.",
	RunE:  runProfileSet,
}

var (
	profileName  string
	profileEmail string
	profilePhone string
)

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Full name")
	profileSetCmd.Flags().StringVar(&profileEmail, "email", "", "Email address")
	profileSetCmd.Flags().StringVar(&profilePhone, "phone", "", "Phone number")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	profile, ok := a.profiles.Get()
	if !ok {
		fmt.Println("No profile yet. Create one with: cvstudio profile set --name ... --email ...")
		return nil
	}
	observability.NewPrinter(os.Stdout).PrintProfile(profile)
	return nil
}

func runProfileSet(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	w := workflow.NewProfileWorkflow(a.profiles)
	profile, err := w.Update(workflow.ProfileInput{
		Name:  profileName,
		Email: profileEmail,
		Phone: profilePhone,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Saved profile for %s\n", profile.Name)
	return nil
}

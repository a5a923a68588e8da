// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-studio/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted result output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReview outputs a human-readable summary of a CV review.
func (p *Printer) PrintReview(review *types.CVReview) {
	if review == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d/100\n", review.Score))
	appendList(&sb, "Strengths", review.Feedback.Strengths)
	appendList(&sb, "Improvements", review.Feedback.Improvements)
	if review.Feedback.Suggestions != "" {
		sb.WriteString("\nSuggestions:\n")
		sb.WriteString("  " + review.Feedback.Suggestions + "\n")
	}

	p.printBox("CV Review", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatch outputs a human-readable summary of a job match.
func (p *Printer) PrintMatch(match *types.JobMatch) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match score: %.1f%%\n", match.MatchScore))
	if match.CVFileName != "" {
		sb.WriteString(fmt.Sprintf("CV: %s\n", match.CVFileName))
	}
	appendList(&sb, "Matching skills", match.MatchingSkills)
	appendList(&sb, "Missing skills", match.MissingSkills)
	appendList(&sb, "Keywords to add", match.KeywordsToAdd)
	appendList(&sb, "Recommendations", match.Recommendations)
	if match.Suggestions != "" {
		sb.WriteString("\nSuggestions:\n")
		sb.WriteString("  " + match.Suggestions + "\n")
	}

	p.printBox("Job Match", strings.TrimRight(sb.String(), "\n"))
}

// PrintProfile outputs a human-readable summary of the user profile.
func (p *Printer) PrintProfile(profile *types.UserProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:  %s\n", profile.Name))
	sb.WriteString(fmt.Sprintf("Email: %s\n", profile.Email))
	if profile.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone: %s\n", profile.Phone))
	}

	p.printBox("Profile", strings.TrimRight(sb.String(), "\n"))
}

func appendList(sb *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString("\n" + title + ":\n")
	for _, item := range items {
		sb.WriteString("  - " + item + "\n")
	}
}

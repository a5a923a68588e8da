package workflow

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-studio/internal/identity"
	"github.com/jonathan/cv-studio/internal/store"
	"github.com/jonathan/cv-studio/internal/types"
)

// LetterInput is the user-supplied input for cover letter generation.
type LetterInput struct {
	Name           string `validate:"-"`
	CVID           string `validate:"-"`
	JobTitle       string `validate:"required"`
	CompanyName    string `validate:"required"`
	JobDescription string `validate:"required"`
}

// letterTemplate is the deterministic letter body. Generation is local; the
// user edits the draft afterwards.
const letterTemplate = `Dear Hiring Manager,

I am writing to express my strong interest in the {{.JobTitle}} position at {{.CompanyName}}. With my background and experience, I am confident that I would be a valuable addition to your team.

Based on the job description, I believe my skills align well with your requirements. I am particularly drawn to this opportunity because it matches my career goals and expertise.

I would welcome the opportunity to discuss how my experience and enthusiasm can contribute to {{.CompanyName}}'s continued success. Thank you for considering my application.

Sincerely,
{{.ApplicantName}}`

// LetterWorkflow generates and persists cover letter drafts.
type LetterWorkflow struct {
	profiles *store.ProfileStore
	letters  *store.CoverLetterStore
	validate *validator.Validate
	tmpl     *template.Template
}

// NewLetterWorkflow wires a cover letter workflow.
func NewLetterWorkflow(profiles *store.ProfileStore, letters *store.CoverLetterStore) *LetterWorkflow {
	return &LetterWorkflow{
		profiles: profiles,
		letters:  letters,
		validate: validator.New(),
		tmpl:     template.Must(template.New("letter").Parse(letterTemplate)),
	}
}

// Generate builds a letter draft from the input and persists it. The
// signature name falls back to a placeholder when no profile exists.
func (w *LetterWorkflow) Generate(input LetterInput) (*types.CoverLetter, error) {
	if err := w.validate.Struct(input); err != nil {
		return nil, inputError(err)
	}

	applicant := "[Your Name]"
	if profile, ok := w.profiles.Get(); ok && strings.TrimSpace(profile.Name) != "" {
		applicant = profile.Name
	}

	var content strings.Builder
	err := w.tmpl.Execute(&content, map[string]string{
		"JobTitle":      input.JobTitle,
		"CompanyName":   input.CompanyName,
		"ApplicantName": applicant,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render cover letter: %w", err)
	}

	name := input.Name
	if strings.TrimSpace(name) == "" {
		name = fmt.Sprintf("%s at %s", input.JobTitle, input.CompanyName)
	}

	letter := &types.CoverLetter{
		ID:             identity.NewID(),
		CVID:           input.CVID,
		Name:           name,
		JobTitle:       input.JobTitle,
		CompanyName:    input.CompanyName,
		JobDescription: input.JobDescription,
		Content:        content.String(),
	}
	return w.letters.Save(letter)
}

// Update re-persists an edited letter, keeping its identity. The letter must
// already exist.
func (w *LetterWorkflow) Update(letter *types.CoverLetter) (*types.CoverLetter, error) {
	if _, ok := w.letters.GetByID(letter.ID); !ok {
		return nil, &ValidationError{Message: fmt.Sprintf("cover letter not found: %s", letter.ID)}
	}
	return w.letters.Save(letter)
}

// inputError converts the first validator failure into a user-facing
// ValidationError.
func inputError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		switch fe.Tag() {
		case "required":
			return &ValidationError{Message: fmt.Sprintf("%s is required", fieldLabel(fe.Field()))}
		case "email":
			return &ValidationError{Message: "please provide a valid email address"}
		default:
			return &ValidationError{Message: fmt.Sprintf("%s is invalid", fieldLabel(fe.Field()))}
		}
	}
	return &ValidationError{Message: err.Error()}
}

// fieldLabel turns a struct field name into a user-facing label.
func fieldLabel(field string) string {
	switch field {
	case "JobTitle":
		return "job title"
	case "CompanyName":
		return "company name"
	case "JobDescription":
		return "job description"
	case "Name":
		return "name"
	case "Email":
		return "email"
	default:
		return strings.ToLower(field)
	}
}

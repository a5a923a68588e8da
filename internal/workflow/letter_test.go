package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-studio/internal/store"
)

func newLetterWorkflow(t *testing.T) (*LetterWorkflow, *store.ProfileStore, *store.CoverLetterStore) {
	t.Helper()
	backend := store.NewMemoryBackend()
	profiles := store.NewProfileStore(backend)
	letters := store.NewCoverLetterStore(backend)
	return NewLetterWorkflow(profiles, letters), profiles, letters
}

func TestLetterWorkflow_GenerateWithProfileName(t *testing.T) {
	w, profiles, letters := newLetterWorkflow(t)
	_, err := profiles.Create("Jane Doe", "jane@example.com", "")
	require.NoError(t, err)

	letter, err := w.Generate(LetterInput{
		JobTitle:       "Backend Engineer",
		CompanyName:    "Acme Corp",
		JobDescription: "Build Go services.",
	})
	require.NoError(t, err)

	assert.Contains(t, letter.Content, "Dear Hiring Manager,")
	assert.Contains(t, letter.Content, "Backend Engineer position at Acme Corp")
	assert.Contains(t, letter.Content, "Sincerely,\nJane Doe")
	assert.Equal(t, "Backend Engineer at Acme Corp", letter.Name)
	assert.NotEmpty(t, letter.ID)
	assert.NotEmpty(t, letter.CreatedAt)

	stored := letters.GetAll()
	require.Len(t, stored, 1)
	assert.Equal(t, letter.ID, stored[0].ID)
}

func TestLetterWorkflow_GenerateWithoutProfileUsesPlaceholder(t *testing.T) {
	w, _, _ := newLetterWorkflow(t)

	letter, err := w.Generate(LetterInput{
		JobTitle:       "Data Analyst",
		CompanyName:    "Initech",
		JobDescription: "Analyze data.",
	})
	require.NoError(t, err)
	assert.Contains(t, letter.Content, "[Your Name]")
}

func TestLetterWorkflow_GenerateRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		input   LetterInput
		message string
	}{
		{
			name:    "Missing job title",
			input:   LetterInput{CompanyName: "Acme", JobDescription: "desc"},
			message: "job title is required",
		},
		{
			name:    "Missing company name",
			input:   LetterInput{JobTitle: "Engineer", JobDescription: "desc"},
			message: "company name is required",
		},
		{
			name:    "Missing job description",
			input:   LetterInput{JobTitle: "Engineer", CompanyName: "Acme"},
			message: "job description is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, _ := newLetterWorkflow(t)
			_, err := w.Generate(tt.input)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.message, validationErr.Message)
		})
	}
}

func TestLetterWorkflow_CustomNamePreserved(t *testing.T) {
	w, _, _ := newLetterWorkflow(t)

	letter, err := w.Generate(LetterInput{
		Name:           "My dream job letter",
		JobTitle:       "Engineer",
		CompanyName:    "Acme",
		JobDescription: "desc",
	})
	require.NoError(t, err)
	assert.Equal(t, "My dream job letter", letter.Name)
}

func TestLetterWorkflow_UpdateExisting(t *testing.T) {
	w, _, letters := newLetterWorkflow(t)

	letter, err := w.Generate(LetterInput{
		JobTitle:       "Engineer",
		CompanyName:    "Acme",
		JobDescription: "desc",
	})
	require.NoError(t, err)

	letter.Content = "Edited draft."
	updated, err := w.Update(letter)
	require.NoError(t, err)
	assert.Equal(t, letter.ID, updated.ID)
	assert.Equal(t, letter.CreatedAt, updated.CreatedAt)

	stored := letters.GetAll()
	require.Len(t, stored, 1)
	assert.Equal(t, "Edited draft.", stored[0].Content)
}

func TestLetterWorkflow_UpdateMissingFails(t *testing.T) {
	w, _, _ := newLetterWorkflow(t)

	letter, err := w.Generate(LetterInput{
		JobTitle:       "Engineer",
		CompanyName:    "Acme",
		JobDescription: "desc",
	})
	require.NoError(t, err)

	letter.ID = "no-such-letter"
	_, err = w.Update(letter)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "no-such-letter")
}

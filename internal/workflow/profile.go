package workflow

import (
	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-studio/internal/store"
	"github.com/jonathan/cv-studio/internal/types"
)

// ProfileInput is the user-supplied input for profile creation and update.
type ProfileInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Phone string `validate:"-"`
}

// ProfileWorkflow validates and persists the singleton user profile.
type ProfileWorkflow struct {
	profiles *store.ProfileStore
	validate *validator.Validate
}

// NewProfileWorkflow wires a profile workflow.
func NewProfileWorkflow(profiles *store.ProfileStore) *ProfileWorkflow {
	return &ProfileWorkflow{profiles: profiles, validate: validator.New()}
}

// Create validates the input and persists a fresh profile.
func (w *ProfileWorkflow) Create(input ProfileInput) (*types.UserProfile, error) {
	if err := w.validate.Struct(input); err != nil {
		return nil, inputError(err)
	}
	return w.profiles.Create(input.Name, input.Email, input.Phone)
}

// Update validates the input and overwrites the stored profile, preserving
// its identity and creation stamp. Creates the profile when none exists.
func (w *ProfileWorkflow) Update(input ProfileInput) (*types.UserProfile, error) {
	if err := w.validate.Struct(input); err != nil {
		return nil, inputError(err)
	}

	profile, ok := w.profiles.Get()
	if !ok {
		return w.profiles.Create(input.Name, input.Email, input.Phone)
	}
	profile.Name = input.Name
	profile.Email = input.Email
	profile.Phone = input.Phone
	return w.profiles.Save(profile)
}

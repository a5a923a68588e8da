package store

import (
	"github.com/jonathan/cv-studio/internal/identity"
	"github.com/jonathan/cv-studio/internal/types"
)

// CoverLetterStore manages the cover letter collection.
type CoverLetterStore struct {
	backend Backend
}

// NewCoverLetterStore creates a cover letter store over the given backend.
func NewCoverLetterStore(backend Backend) *CoverLetterStore {
	return &CoverLetterStore{backend: backend}
}

// GetAll returns every stored cover letter in insertion order.
func (s *CoverLetterStore) GetAll() []types.CoverLetter {
	return readList[types.CoverLetter](s.backend, PartitionCoverLetters)
}

// GetByID returns the cover letter with the given id, or false if absent.
func (s *CoverLetterStore) GetByID(id string) (*types.CoverLetter, bool) {
	for _, letter := range s.GetAll() {
		if letter.ID == id {
			return &letter, true
		}
	}
	return nil, false
}

// Save upserts a cover letter by id, preserving the original createdAt on
// replacement.
func (s *CoverLetterStore) Save(letter *types.CoverLetter) (*types.CoverLetter, error) {
	letters := s.GetAll()
	letter.UpdatedAt = identity.Timestamp()

	replaced := false
	for i := range letters {
		if letters[i].ID == letter.ID {
			letter.CreatedAt = letters[i].CreatedAt
			letters[i] = *letter
			replaced = true
			break
		}
	}
	if !replaced {
		letter.CreatedAt = letter.UpdatedAt
		letters = append(letters, *letter)
	}

	if err := writeList(s.backend, PartitionCoverLetters, letters); err != nil {
		return nil, err
	}
	return letter, nil
}

// Delete removes the cover letter with the given id. Absent ids are a no-op.
func (s *CoverLetterStore) Delete(id string) error {
	letters := s.GetAll()
	kept := make([]types.CoverLetter, 0, len(letters))
	for _, letter := range letters {
		if letter.ID != id {
			kept = append(kept, letter)
		}
	}
	return writeList(s.backend, PartitionCoverLetters, kept)
}

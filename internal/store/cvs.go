package store

import (
	"github.com/jonathan/cv-studio/internal/identity"
	"github.com/jonathan/cv-studio/internal/types"
)

// CVStore manages the CV collection.
type CVStore struct {
	backend Backend
}

// NewCVStore creates a CV store over the given backend.
func NewCVStore(backend Backend) *CVStore {
	return &CVStore{backend: backend}
}

// GetAll returns every stored CV in insertion order.
func (s *CVStore) GetAll() []types.CV {
	return readList[types.CV](s.backend, PartitionCVs)
}

// GetByID returns the CV with the given id, or false if absent.
func (s *CVStore) GetByID(id string) (*types.CV, bool) {
	for _, cv := range s.GetAll() {
		if cv.ID == id {
			return &cv, true
		}
	}
	return nil, false
}

// Save upserts a CV by id: an existing record is replaced in place with its
// original createdAt preserved; a new record is appended with both
// timestamps set. The stored entity is returned.
func (s *CVStore) Save(cv *types.CV) (*types.CV, error) {
	cvs := s.GetAll()
	cv.Normalize()
	cv.UpdatedAt = identity.Timestamp()

	replaced := false
	for i := range cvs {
		if cvs[i].ID == cv.ID {
			cv.CreatedAt = cvs[i].CreatedAt
			cvs[i] = *cv
			replaced = true
			break
		}
	}
	if !replaced {
		cv.CreatedAt = cv.UpdatedAt
		cvs = append(cvs, *cv)
	}

	if err := writeList(s.backend, PartitionCVs, cvs); err != nil {
		return nil, err
	}
	return cv, nil
}

// Delete removes the CV with the given id. Absent ids are a no-op. Documents
// referencing the CV are intentionally left untouched.
func (s *CVStore) Delete(id string) error {
	cvs := s.GetAll()
	kept := make([]types.CV, 0, len(cvs))
	for _, cv := range cvs {
		if cv.ID != id {
			kept = append(kept, cv)
		}
	}
	return writeList(s.backend, PartitionCVs, kept)
}

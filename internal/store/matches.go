package store

import (
	"github.com/jonathan/cv-studio/internal/identity"
	"github.com/jonathan/cv-studio/internal/types"
)

// JobMatchStore manages the append-only job match history. Matches are never
// updated, but may be deleted by id.
type JobMatchStore struct {
	backend Backend
}

// NewJobMatchStore creates a job match store over the given backend.
func NewJobMatchStore(backend Backend) *JobMatchStore {
	return &JobMatchStore{backend: backend}
}

// GetAll returns every stored match in insertion order.
func (s *JobMatchStore) GetAll() []types.JobMatch {
	return readList[types.JobMatch](s.backend, PartitionJobMatches)
}

// GetByCVID returns the match history for one CV in insertion order.
func (s *JobMatchStore) GetByCVID(cvID string) []types.JobMatch {
	var matched []types.JobMatch
	for _, match := range s.GetAll() {
		if match.CVID == cvID {
			matched = append(matched, match)
		}
	}
	return matched
}

// Append stamps createdAt and adds the match to the history.
func (s *JobMatchStore) Append(match *types.JobMatch) (*types.JobMatch, error) {
	matches := s.GetAll()
	match.CreatedAt = identity.Timestamp()
	matches = append(matches, *match)
	if err := writeList(s.backend, PartitionJobMatches, matches); err != nil {
		return nil, err
	}
	return match, nil
}

// Delete removes the match with the given id. Absent ids are a no-op.
func (s *JobMatchStore) Delete(id string) error {
	matches := s.GetAll()
	kept := make([]types.JobMatch, 0, len(matches))
	for _, match := range matches {
		if match.ID != id {
			kept = append(kept, match)
		}
	}
	return writeList(s.backend, PartitionJobMatches, kept)
}

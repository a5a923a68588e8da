package store

import (
	"github.com/jonathan/cv-studio/internal/identity"
	"github.com/jonathan/cv-studio/internal/types"
)

// ReviewStore manages the append-only CV review history. Reviews are
// immutable after creation; there is no update or delete path.
type ReviewStore struct {
	backend Backend
}

// NewReviewStore creates a review store over the given backend.
func NewReviewStore(backend Backend) *ReviewStore {
	return &ReviewStore{backend: backend}
}

// GetAll returns every stored review in insertion order.
func (s *ReviewStore) GetAll() []types.CVReview {
	return readList[types.CVReview](s.backend, PartitionReviews)
}

// GetByCVID returns the review history for one CV in insertion order.
func (s *ReviewStore) GetByCVID(cvID string) []types.CVReview {
	var matched []types.CVReview
	for _, review := range s.GetAll() {
		if review.CVID == cvID {
			matched = append(matched, review)
		}
	}
	return matched
}

// Append stamps createdAt and adds the review to the history.
func (s *ReviewStore) Append(review *types.CVReview) (*types.CVReview, error) {
	reviews := s.GetAll()
	review.CreatedAt = identity.Timestamp()
	reviews = append(reviews, *review)
	if err := writeList(s.backend, PartitionReviews, reviews); err != nil {
		return nil, err
	}
	return review, nil
}

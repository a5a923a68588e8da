package store

import (
	"encoding/json"
	"log"

	"github.com/jonathan/cv-studio/internal/identity"
	"github.com/jonathan/cv-studio/internal/types"
)

// ProfileStore manages the singleton user profile partition.
type ProfileStore struct {
	backend Backend
}

// NewProfileStore creates a profile store over the given backend.
func NewProfileStore(backend Backend) *ProfileStore {
	return &ProfileStore{backend: backend}
}

// Get returns the stored profile, or false when no profile exists. A corrupt
// partition reads as absent.
func (s *ProfileStore) Get() (*types.UserProfile, bool) {
	data, ok, err := s.backend.Read(PartitionProfile)
	if err != nil {
		log.Printf("warning: failed to read partition %s, treating as absent: %v", PartitionProfile, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var profile types.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		log.Printf("warning: corrupt partition %s, resetting to empty: %v", PartitionProfile, err)
		return nil, false
	}
	return &profile, true
}

// Create builds and persists a fresh profile with both timestamps set to now.
func (s *ProfileStore) Create(name, email, phone string) (*types.UserProfile, error) {
	now := identity.Timestamp()
	profile := &types.UserProfile{
		ID:        identity.NewID(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.write(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Save overwrites the profile, stamping a fresh updatedAt.
func (s *ProfileStore) Save(profile *types.UserProfile) (*types.UserProfile, error) {
	profile.UpdatedAt = identity.Timestamp()
	if profile.CreatedAt == "" {
		profile.CreatedAt = profile.UpdatedAt
	}
	if err := s.write(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileStore) write(profile *types.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return &PersistenceError{Partition: PartitionProfile, Message: "failed to encode profile", Cause: err}
	}
	if err := s.backend.Write(PartitionProfile, data); err != nil {
		return &PersistenceError{Partition: PartitionProfile, Message: "write failed", Cause: err}
	}
	return nil
}

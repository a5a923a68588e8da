// Package store provides the partitioned local document store: five
// independent collections with upsert-by-id and append-only semantics over a
// swappable persistence backend.
//
// Reads favor availability over strict durability: a corrupt partition is
// logged and read as empty rather than failing the caller. Writes are
// full-partition rewrites with no concurrency control; last write wins.
package store

import (
	"encoding/json"
	"log"
)

// Partition keys. These names are part of the persisted layout and must not
// change.
const (
	PartitionProfile      = "cv_ai_user_profile"
	PartitionCVs          = "cv_ai_cvs"
	PartitionCoverLetters = "cv_ai_cover_letters"
	PartitionReviews      = "cv_ai_cv_reviews"
	PartitionJobMatches   = "cv_ai_job_matches"
)

// readList loads a list partition. Absent or unparsable partitions read as
// empty by policy.
func readList[T any](b Backend, partition string) []T {
	data, ok, err := b.Read(partition)
	if err != nil {
		log.Printf("warning: failed to read partition %s, treating as empty: %v", partition, err)
		return nil
	}
	if !ok {
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("warning: corrupt partition %s, resetting to empty: %v", partition, err)
		return nil
	}
	return items
}

// writeList replaces a list partition.
func writeList[T any](b Backend, partition string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return &PersistenceError{Partition: partition, Message: "failed to encode collection", Cause: err}
	}
	if err := b.Write(partition, data); err != nil {
		return &PersistenceError{Partition: partition, Message: "write failed", Cause: err}
	}
	return nil
}

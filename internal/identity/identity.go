// Package identity generates opaque entity identifiers and ISO-8601 timestamps.
package identity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// suffixLength is the number of random characters appended to the time prefix.
const suffixLength = 12

// NewID returns an opaque identifier built from a millisecond-epoch base-36
// prefix and a random suffix. Uniqueness is overwhelming within a single
// process; no cross-device guarantee is made.
func NewID() string {
	prefix := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + suffix[:suffixLength]
}

// Timestamp returns the current wall-clock time as an ISO-8601 string in UTC.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

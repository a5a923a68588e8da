package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Backend is the persistence medium beneath the typed stores. Each partition
// is an independent blob; writes replace the whole partition.
type Backend interface {
	// Read returns the raw partition contents. The boolean reports whether
	// the partition exists; a missing partition is not an error.
	Read(partition string) ([]byte, bool, error)
	// Write replaces the partition contents atomically from the caller's
	// point of view (full-partition rewrite, last write wins).
	Write(partition string, data []byte) error
}

// FileBackend stores each partition as a JSON file under a data directory.
// It is the stand-in for the browser's local storage area.
type FileBackend struct {
	dir string
}

// NewFileBackend creates a file-backed store rooted at dir. The directory is
// created lazily on first write.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

func (b *FileBackend) path(partition string) string {
	return filepath.Join(b.dir, partition+".json")
}

// Read returns the contents of the partition file.
func (b *FileBackend) Read(partition string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.path(partition))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read partition %s: %w", partition, err)
	}
	return data, true, nil
}

// Write replaces the partition file.
func (b *FileBackend) Write(partition string, data []byte) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(b.path(partition), data, 0o644); err != nil {
		return fmt.Errorf("failed to write partition %s: %w", partition, err)
	}
	return nil
}

// MemoryBackend keeps partitions in memory. Used in tests and anywhere a
// throwaway store is useful.
type MemoryBackend struct {
	mu         sync.Mutex
	partitions map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{partitions: make(map[string][]byte)}
}

// Read returns the in-memory partition contents.
func (b *MemoryBackend) Read(partition string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.partitions[partition]
	if !ok {
		return nil, false, nil
	}
	return data, true, nil
}

// Write replaces the in-memory partition contents.
func (b *MemoryBackend) Write(partition string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.partitions[partition] = append([]byte(nil), data...)
	return nil
}

// Package cache persists built call graphs keyed by project identity and
// index freshness. Storage is an explicit key-value interface so tests can
// swap the on-disk store for an in-memory fake.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
)

// Store reads and writes named records within one project's cache
// namespace.
type Store interface {
	Get(name string) ([]byte, bool)
	Put(name string, data []byte) error
}

// FileStore keeps records as plain files under
// <project>/.cache/callscope/. No locking: concurrent writers race and the
// last one wins.
type FileStore struct {
	dir string
}

// NewFileStore creates the file-backed store for a project.
func NewFileStore(projectDir string) *FileStore {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		abs = projectDir
	}
	return &FileStore{dir: filepath.Join(abs, ".cache", "callscope")}
}

func (s *FileStore) Get(name string) ([]byte, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (s *FileStore) Put(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0644)
}

// Dir returns the namespace directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	records map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string][]byte)}
}

func (s *MemStore) Get(name string) ([]byte, bool) {
	data, ok := s.records[name]
	return data, ok
}

func (s *MemStore) Put(name string, data []byte) error {
	s.records[name] = data
	return nil
}

// Fingerprint derives a stable 16-hex-digit identity from the
// canonicalized absolute project path.
func Fingerprint(projectDir string) string {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		abs = projectDir
	}
	sum := sha256.Sum256([]byte(filepath.Clean(abs)))
	return hex.EncodeToString(sum[:])[:16]
}

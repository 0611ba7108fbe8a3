// Package archive keeps immutable audit copies of raw submission payloads.
// Archiving is best-effort from the orchestrator's point of view: a failed
// put is logged, never surfaced into the scoring pipeline.
package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// PayloadStore abstracts blob storage for submission payloads.
type PayloadStore interface {
	PutPayload(ctx context.Context, applicantID, submissionID string, data []byte) error
	GetPayload(ctx context.Context, applicantID, submissionID string) ([]byte, error)
}

// LocalStore implements PayloadStore using the local filesystem.
// Useful for development and testing.
type LocalStore struct {
	BaseDir string
}

// NewLocalStore creates a LocalStore rooted at the given directory.
func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{BaseDir: baseDir}
}

func (s *LocalStore) path(applicantID, submissionID string) string {
	return filepath.Join(s.BaseDir, applicantID, "submissions", submissionID+".json")
}

// PutPayload stores a payload blob.
func (s *LocalStore) PutPayload(ctx context.Context, applicantID, submissionID string, data []byte) error {
	path := s.path(applicantID, submissionID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// GetPayload retrieves a payload blob.
func (s *LocalStore) GetPayload(ctx context.Context, applicantID, submissionID string) ([]byte, error) {
	return os.ReadFile(s.path(applicantID, submissionID))
}

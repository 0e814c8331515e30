package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsenergy/till/internal/receipt"
)

// FileStore persists the history as a single JSON blob.
//
// Every Append is a read-modify-write of the whole collection: load the
// current blob, append the new receipt, write the updated blob to a
// temp file in the same directory, and rename it over the old one. The
// rename makes the rewrite atomic from the application's point of view.
//
// Load is fail-open: a missing file or a blob that no longer parses is
// treated as an empty history, never as a fatal error.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
// The file is created on first Append.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the persisted receipts, or an empty slice if the file
// does not exist or holds malformed data.
func (s *FileStore) Load(ctx context.Context) ([]receipt.Receipt, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		// Missing history is an empty history.
		return []receipt.Receipt{}, nil
	}

	var receipts []receipt.Receipt
	if err := json.Unmarshal(data, &receipts); err != nil {
		// Corruption is treated as absence.
		return []receipt.Receipt{}, nil
	}

	if receipts == nil {
		receipts = []receipt.Receipt{}
	}
	return receipts, nil
}

// Append adds the receipt to the end of the collection and rewrites the
// whole blob. On error the previously persisted blob is left untouched.
func (s *FileStore) Append(ctx context.Context, r receipt.Receipt) error {
	receipts, err := s.Load(ctx)
	if err != nil {
		return fmt.Errorf("append receipt: %w", err)
	}
	receipts = append(receipts, r)

	data, err := json.MarshalIndent(receipts, "", "  ")
	if err != nil {
		return fmt.Errorf("append receipt: marshal history: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("append receipt: create history dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("append receipt: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("append receipt: write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("append receipt: close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("append receipt: replace history: %w", err)
	}

	return nil
}

// Close is a no-op for the file-backed store.
func (s *FileStore) Close() error {
	return nil
}

package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/export"
)

// Sink implements ports.ExportSink using the local filesystem.
// Each session gets its own directory holding export.FileName.
type Sink struct {
	BasePath string
}

// New creates a new Sink with the given base path.
// If basePath is empty, it defaults to ".menutree/exports".
func New(basePath string) *Sink {
	if basePath == "" {
		basePath = filepath.Join(".menutree", "exports")
	}
	return &Sink{BasePath: basePath}
}

// Path returns the file a session's document is written to.
func (s *Sink) Path(sessionID string) string {
	return filepath.Join(s.BasePath, sessionID, export.FileName)
}

func checkSessionID(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID cannot be empty")
	}
	if strings.ContainsAny(sessionID, `/\`) || sessionID == "." || sessionID == ".." {
		return fmt.Errorf("sessionID %q is not a valid directory name", sessionID)
	}
	return nil
}

// Publish writes the document atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func (s *Sink) Publish(ctx context.Context, sessionID string, doc *export.Document) error {
	if err := checkSessionID(sessionID); err != nil {
		return err
	}

	dir := filepath.Join(s.BasePath, sessionID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure export directory: %w", err)
	}

	data, err := export.Marshal(doc)
	if err != nil {
		return err
	}

	// 1. Create Temp File
	// Same directory, so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(dir, "tmp-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	// 2. Write Data
	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	// 3. Fsync to ensure durability
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}

	// 4. Close File (cannot rename open file on Windows)
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// 5. Atomic Rename
	// On Windows, os.Rename fails if dest exists, so remove it first.
	destPath := s.Path(sessionID)
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing export for overwrite: %w", err)
		}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file to export: %w", err)
	}
	return nil
}

// Fetch reads the session's document back.
func (s *Sink) Fetch(ctx context.Context, sessionID string) (*export.Document, error) {
	if err := checkSessionID(sessionID); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path(sessionID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to read export file: %w", err)
	}
	defer f.Close()

	return export.Decode(f)
}

// Delete removes the session's export directory.
func (s *Sink) Delete(ctx context.Context, sessionID string) error {
	if err := checkSessionID(sessionID); err != nil {
		return err
	}

	if err := os.RemoveAll(filepath.Join(s.BasePath, sessionID)); err != nil {
		return fmt.Errorf("failed to delete export: %w", err)
	}
	return nil
}

// List returns every session directory that holds an export.
func (s *Sink) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list exports: %w", err)
	}

	sessions := []string{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(s.Path(entry.Name())); err == nil {
			sessions = append(sessions, entry.Name())
		}
	}
	sort.Strings(sessions)
	return sessions, nil
}

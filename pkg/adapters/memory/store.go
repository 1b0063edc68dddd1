package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/menutree/pkg/domain"
	"github.com/aretw0/menutree/pkg/export"
)

// Sink implements ports.ExportSink in memory.
// Safe for concurrent use.
type Sink struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewSink creates a new in-memory sink.
func NewSink() *Sink {
	return &Sink{
		data: make(map[string][]byte),
	}
}

// Publish stores an encoded copy of the document, so later edits to doc are not visible.
func (s *Sink) Publish(ctx context.Context, sessionID string, doc *export.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = data
	return nil
}

// Fetch decodes a fresh copy of the stored document.
func (s *Sink) Fetch(ctx context.Context, sessionID string) (*export.Document, error) {
	s.mu.RLock()
	data, ok := s.data[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrDocumentNotFound
	}

	var doc export.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return &doc, nil
}

// Delete removes the document.
func (s *Sink) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// List returns sessions with a published document, sorted.
func (s *Sink) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]string, 0, len(s.data))
	for id := range s.data {
		sessions = append(sessions, id)
	}
	sort.Strings(sessions)
	return sessions, nil
}

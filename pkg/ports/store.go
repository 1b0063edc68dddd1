package ports

import (
	"context"

	"github.com/aretw0/menutree/pkg/export"
)

// ExportSink defines where published documents are delivered.
// The exported document is the only artifact menutree persists; the editing tree
// itself always stays in memory.
type ExportSink interface {
	// Publish stores the latest document for a session, replacing any previous one.
	Publish(ctx context.Context, sessionID string, doc *export.Document) error

	// Fetch retrieves the latest document for a session.
	// Returns domain.ErrDocumentNotFound if nothing was published.
	Fetch(ctx context.Context, sessionID string) (*export.Document, error)

	// Delete removes the document for a session.
	Delete(ctx context.Context, sessionID string) error

	// List returns the sessions that have a published document.
	List(ctx context.Context) ([]string, error)
}

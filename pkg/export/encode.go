package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

const (
	// FileName is the name the download collaborator offers the document under.
	FileName = "generated_json.json"
	// MIMEType of the exported document.
	MIMEType = "application/json"
)

// Encode writes the document as JSON with 2-space indentation.
// Text is written verbatim (no HTML escaping) since it ends up in chat messages.
func Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return nil
}

// Marshal returns the indented encoding of the document.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a document previously produced by Encode.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &doc, nil
}

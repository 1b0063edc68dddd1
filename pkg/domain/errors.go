package domain

import "errors"

// ErrNotFound is returned when a node ID cannot be found in the tree.
var ErrNotFound = errors.New("node not found")

// ErrIndexOutOfRange is returned when a carousel card index no longer points to a card.
var ErrIndexOutOfRange = errors.New("carousel card index out of range")

// ErrInvalidState is returned when a tree invariant is violated.
var ErrInvalidState = errors.New("invalid tree state")

// ErrResourceExhausted is returned when a fresh node ID cannot be allocated.
// Callers should treat it as fatal.
var ErrResourceExhausted = errors.New("node id allocation failed")

// ErrUnavailable is returned when an operation is not offered for the node,
// e.g. adding a sub-button to a node without labels.
var ErrUnavailable = errors.New("operation unavailable")

// ErrInvalidMediaType is returned when a card media type is neither IMAGE nor VIDEO.
var ErrInvalidMediaType = errors.New("invalid media type")

// ErrSessionNotFound is returned when a session ID cannot be found.
var ErrSessionNotFound = errors.New("session not found")

// ErrDocumentNotFound is returned when no document was published for a session.
var ErrDocumentNotFound = errors.New("document not found")

// ErrSessionExists is returned when a session ID is already in use.
var ErrSessionExists = errors.New("session already exists")

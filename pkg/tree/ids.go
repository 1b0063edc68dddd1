package tree

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator allocates a new node identifier.
type IDGenerator func() (string, error)

// UUIDGenerator returns random (v4) UUIDs.
func UUIDGenerator() IDGenerator {
	return func() (string, error) {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", err
		}
		return id.String(), nil
	}
}

// SequenceGenerator returns "<prefix>1", "<prefix>2", ...
// Useful for tests and golden files where stable IDs matter.
func SequenceGenerator(prefix string) IDGenerator {
	var n uint64
	return func() (string, error) {
		if n == ^uint64(0) {
			return "", fmt.Errorf("sequence %q exhausted", prefix)
		}
		n++
		return prefix + strconv.FormatUint(n, 10), nil
	}
}

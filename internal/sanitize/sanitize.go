// Package sanitize cleans free text received by the transports before it reaches the editor.
package sanitize

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxSize is 4KB, enough for any button or reply text.
const DefaultMaxSize = 4096

var (
	ErrTooLarge    = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8 = errors.New("input contains invalid UTF-8 sequences")
)

// Sanitizer enforces a size limit, validates UTF-8 and strips control characters.
// The zero value uses DefaultMaxSize.
type Sanitizer struct {
	MaxSize int
}

// New returns a Sanitizer with the given limit; non-positive means DefaultMaxSize.
func New(maxSize int) Sanitizer {
	return Sanitizer{MaxSize: maxSize}
}

func (s Sanitizer) limit() int {
	if s.MaxSize <= 0 {
		return DefaultMaxSize
	}
	return s.MaxSize
}

// Text cleans a single field. Oversized input is rejected, never truncated,
// so what the user sees is what gets exported.
func (s Sanitizer) Text(input string) (string, error) {
	if limit := s.limit(); len(input) > limit {
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrTooLarge, len(input), limit)
	}

	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	// Fast path: nothing to strip.
	clean := true
	for _, r := range input {
		if unicode.IsControl(r) && !isSafeControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return input, nil
	}

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if !unicode.IsControl(r) || isSafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

// Optional cleans a field that may be absent.
func (s Sanitizer) Optional(input *string) (*string, error) {
	if input == nil {
		return nil, nil
	}
	out, err := s.Text(*input)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Newlines, tabs and carriage returns are legitimate in reply texts.
func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}

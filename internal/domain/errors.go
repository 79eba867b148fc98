// Package domain defines the core value types for WebNode.
package domain

import (
	"errors"
	"fmt"
)

// Error types for launcher generation.
var (
	// ErrNoDocumentsFolder is returned when no documents folder could be
	// located under the user's home directory.
	ErrNoDocumentsFolder = errors.New("no documents folder found")

	// ErrInvalidURL is returned when the URL does not start with http:// or https://.
	ErrInvalidURL = errors.New("URL must start with http:// or https://")
)

// ValidationError reports a missing or malformed identity field.
// Generation is aborted and nothing is written when it is returned.
type ValidationError struct {
	Field  string
	Reason string
}

// Error returns the error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// GenerationError wraps an unexpected I/O failure during script generation.
type GenerationError struct {
	Err     error
	Context string
}

// Error returns the error message.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Err)
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

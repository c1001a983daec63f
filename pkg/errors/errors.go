package errors

import (
	stdErrors "errors"
	"fmt"
)

// Sentinel causes carried by ResolutionError.
var (
	ErrStyleNotFound = stdErrors.New("style not found")
	ErrNotLeaf       = stdErrors.New("style node is not a leaf")
	ErrLeafPanicked  = stdErrors.New("style leaf panicked")
	ErrMalformedPath = stdErrors.New("malformed style path")
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures style document validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ResolutionError reports why a style path could not be resolved from the
// style table. The resolver recovers from it through its fallback chain; it
// only reaches callers through the Lookup family.
type ResolutionError struct {
	Path string
	Err  error
}

// NewResolutionError constructs a ResolutionError for the given dot-path.
func NewResolutionError(path string, err error) error {
	return &ResolutionError{Path: path, Err: err}
}

func (e *ResolutionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("resolution error [%s]: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("resolution error: %v", e.Err)
}

// Unwrap exposes the root cause.
func (e *ResolutionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

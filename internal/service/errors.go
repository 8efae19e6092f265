package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrExtractionFailure is returned when a collaborator could not produce
	// any text from a source.
	ErrExtractionFailure = errors.New("extraction failure")
	// ErrNotFound is returned when a remote document is absent or not
	// accessible.
	ErrNotFound = errors.New("not found")
	// ErrInvalidReference is returned when a supplied identifier or URL is
	// malformed and extraction cannot be attempted.
	ErrInvalidReference = errors.New("invalid reference")
)

// Kind classifies a processing failure.
type Kind int

const (
	KindExtractionFailure Kind = iota + 1
	KindNotFound
	KindInvalidReference
)

func (k Kind) String() string {
	switch k {
	case KindExtractionFailure:
		return "extraction_failure"
	case KindNotFound:
		return "not_found"
	case KindInvalidReference:
		return "invalid_reference"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindExtractionFailure:
		return ErrExtractionFailure
	case KindNotFound:
		return ErrNotFound
	case KindInvalidReference:
		return ErrInvalidReference
	default:
		return nil
	}
}

// Error is a processing failure of one source. It unwraps to the
// collaborator's error and matches the sentinel of its Kind with errors.Is.
type Error struct {
	Kind   Kind
	Source SourceType
	Op     string // e.g. "PDF parsing failed"
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the kind of a processing error.
func KindOf(err error) (Kind, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind, true
	}
	return 0, false
}

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// Is lets validation errors match ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

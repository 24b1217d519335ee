// Package errors provides the standardized error types for the typograf
// pipeline: configuration errors surfaced to the caller before any text is
// processed, and internal invariant violations that abort a call rather than
// return corrupted output.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrUnknownLocale indicates a locale identifier outside the supported set
	ErrUnknownLocale = errors.New("unknown locale")
	// ErrOptionConflict indicates an invalid option combination
	ErrOptionConflict = errors.New("option conflict")
	// ErrReservedCodePoint indicates input containing a rune from the
	// reserved placeholder range
	ErrReservedCodePoint = errors.New("reserved code point in input")
	// ErrInvariant indicates an internal pipeline invariant violation
	ErrInvariant = errors.New("internal invariant violation")
)

// UnknownLocaleError represents a lookup of an unsupported locale with context
type UnknownLocaleError struct {
	Locale    string   // Identifier that failed the lookup
	Supported []string // The supported identifiers, for the error message
	Err       error    // Underlying error, if any
}

func (e *UnknownLocaleError) Error() string {
	if len(e.Supported) > 0 {
		return fmt.Sprintf("unknown locale %q (supported: %v)", e.Locale, e.Supported)
	}
	return fmt.Sprintf("unknown locale %q", e.Locale)
}

func (e *UnknownLocaleError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnknownLocale
}

// OptionConflictError represents an invalid combination of pipeline options
type OptionConflictError struct {
	Option   string // Option that cannot take its current value
	Conflict string // Option it conflicts with
	Reason   string // Human-readable explanation
	Err      error  // Underlying error, if any
}

func (e *OptionConflictError) Error() string {
	if e.Conflict != "" {
		return fmt.Sprintf("option %s conflicts with %s: %s", e.Option, e.Conflict, e.Reason)
	}
	return fmt.Sprintf("invalid option %s: %s", e.Option, e.Reason)
}

func (e *OptionConflictError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrOptionConflict
}

// ReservedCodePointError reports input text containing a rune from the
// reserved placeholder range. Such input is rejected before extraction so
// that placeholders can never collide with legitimate text.
type ReservedCodePointError struct {
	Rune   rune // Offending rune
	Offset int  // Byte offset in the input
	Err    error
}

func (e *ReservedCodePointError) Error() string {
	return fmt.Sprintf("input contains reserved code point %U at byte %d", e.Rune, e.Offset)
}

func (e *ReservedCodePointError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrReservedCodePoint
}

// InvariantError represents a defect detected mid-pipeline, e.g. a
// placeholder count mismatch during reinsertion or overlapping accepted
// spans out of the matcher. It is never recovered from.
type InvariantError struct {
	Stage  string // Pipeline stage or component that detected the violation
	Detail string // What was violated
	Err    error
}

func (e *InvariantError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("invariant violation in %s: %s", e.Stage, e.Detail)
	}
	return fmt.Sprintf("invariant violation: %s", e.Detail)
}

func (e *InvariantError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvariant
}

// Helper functions for creating common errors

// NewUnknownLocale creates an UnknownLocaleError
func NewUnknownLocale(locale string, supported []string) *UnknownLocaleError {
	return &UnknownLocaleError{
		Locale:    locale,
		Supported: supported,
	}
}

// NewOptionConflict creates an OptionConflictError
func NewOptionConflict(option, conflict, reason string) *OptionConflictError {
	return &OptionConflictError{
		Option:   option,
		Conflict: conflict,
		Reason:   reason,
	}
}

// NewReservedCodePoint creates a ReservedCodePointError
func NewReservedCodePoint(r rune, offset int) *ReservedCodePointError {
	return &ReservedCodePointError{
		Rune:   r,
		Offset: offset,
	}
}

// NewInvariant creates an InvariantError
func NewInvariant(stage, detail string) *InvariantError {
	return &InvariantError{
		Stage:  stage,
		Detail: detail,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Package errors provides custom error types for the sheave system.
// These errors make the distinction between recoverable and fatal
// filesystem failures visible to callers, and enable programmatic
// error checking with errors.Is and errors.As.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is is an alias for the standard library errors.Is.
var Is = errors.Is

// As is an alias for the standard library errors.As.
var As = errors.As

// Common sentinel errors for the sheave system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnreadableSource indicates a source document could not be read.
	// Source integrity is a precondition of a run, so this is fatal.
	ErrUnreadableSource = errors.New("unreadable source")

	// ErrUnreadableDestination indicates an existing target file could not be read.
	// This is recoverable: the target is treated as differing and overwritten.
	ErrUnreadableDestination = errors.New("unreadable destination")

	// ErrWriteFailed indicates a copy, generate, remove or mkdir failed
	ErrWriteFailed = errors.New("write failed")

	// ErrOutOfDate indicates that a check run found pending changes
	ErrOutOfDate = errors.New("derived guidance files are out of date")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "yaml", "metadata", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations that do not fit
// the source/destination/write taxonomy, such as listing a directory.
type IOError struct {
	Operation string // "list", "stat", "watch"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message(err),
		Err:       err,
	}
}

// SourceReadError is returned when a source document cannot be read.
type SourceReadError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *SourceReadError) Error() string {
	return fmt.Sprintf("cannot read source document %s: %s", e.Path, message(e.Err))
}

// Unwrap implements errors.Unwrap
func (e *SourceReadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *SourceReadError) Is(target error) bool {
	return target == ErrUnreadableSource
}

// NewSourceReadError creates a new SourceReadError
func NewSourceReadError(path string, err error) *SourceReadError {
	return &SourceReadError{Path: path, Err: err}
}

// DestinationReadError is returned when an existing target file cannot be read.
// Callers recover from it by overwriting the target.
type DestinationReadError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *DestinationReadError) Error() string {
	return fmt.Sprintf("cannot read destination %s: %s", e.Path, message(e.Err))
}

// Unwrap implements errors.Unwrap
func (e *DestinationReadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DestinationReadError) Is(target error) bool {
	return target == ErrUnreadableDestination
}

// NewDestinationReadError creates a new DestinationReadError
func NewDestinationReadError(path string, err error) *DestinationReadError {
	return &DestinationReadError{Path: path, Err: err}
}

// WriteError is returned when a target cannot be written, created or removed.
type WriteError struct {
	Operation string // "copy", "generate", "remove", "mkdir"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Path, message(e.Err))
}

// Unwrap implements errors.Unwrap
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailed
}

// NewWriteError creates a new WriteError
func NewWriteError(operation, path string, err error) *WriteError {
	return &WriteError{Operation: operation, Path: path, Err: err}
}

// Helper functions for error checking

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsRecoverable reports whether a run may continue after err by taking
// the conservative action (overwriting the destination).
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrUnreadableDestination)
}

// IsFatal reports whether err must abort a run.
func IsFatal(err error) bool {
	return err != nil && !IsRecoverable(err)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// IsOutOfDate checks if an error reports pending changes from a check run
func IsOutOfDate(err error) bool {
	return errors.Is(err, ErrOutOfDate)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

func message(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

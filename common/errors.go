// Package common provides shared constants, types, and utilities
// used across the Region Switcher application.
package common

import "errors"

// Sentinel errors.
// These can be checked with errors.Is() for proper error handling.
var (
	// Catalog errors.
	ErrAccessCodeNotFound = errors.New("access code not found")
	ErrRegionNotFound     = errors.New("region not found")
	ErrInvalidCatalog     = errors.New("invalid region catalog")

	// Session errors.
	ErrTimeout   = errors.New("operation timed out")
	ErrCancelled = errors.New("operation cancelled")
	ErrClosed    = errors.New("simulator closed")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")

	// Environment errors.
	ErrNotATerminal = errors.New("interactive mode requires a terminal")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}

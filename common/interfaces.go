// Package common provides shared constants, types, and utilities
// used across the Region Switcher application.
package common

// Clipboard is a write-only view of the system clipboard.
type Clipboard interface {
	// WriteAll replaces the clipboard contents with text.
	WriteAll(text string) error
}

// Logger defines the interface for structured logging.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...interface{})
	// Info logs an informational message.
	Info(msg string, args ...interface{})
	// Warn logs a warning message.
	Warn(msg string, args ...interface{})
	// Error logs an error message.
	Error(msg string, args ...interface{})
}

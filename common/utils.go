// Package common provides shared constants, types, and utilities
// used across the Region Switcher application.
package common

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// NewSessionID returns a random identifier for one run of the application.
// It tags log entries and notifications so that a run can be followed
// through the log file.
func NewSessionID() string {
	return uuid.NewString()
}

// GetConfigDir returns the path to the application configuration directory.
// It does not create the directory.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", WrapError(err, "failed to get home directory")
	}
	return filepath.Join(homeDir, ".config", ConfigDirName), nil
}

// FileExists checks if a file exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Package common provides shared constants, types, utilities, and interfaces
// used throughout the Region Switcher application.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: application metadata, simulated delays and UI limits
//   - Errors: sentinel errors for consistent error handling across packages
//   - Interfaces: abstractions for the clipboard and logging
//   - Logger: leveled logging backed by zerolog with file rotation
//   - Utils: config directory resolution and small helpers
//
// # Usage
//
//	common.LogInfo("Region changed to %s", region.Code)
//
//	if errors.Is(err, common.ErrAccessCodeNotFound) {
//	    // unknown access code
//	}
package common

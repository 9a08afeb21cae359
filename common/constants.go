// Package common provides shared constants, types, and utilities
// used across the Region Switcher application.
package common

import "time"

// Application metadata.
const (
	// AppName is the display name shown in the header.
	AppName = "TikTok Mod"
	// AppVersion is the version string shown in the header and about panel.
	AppVersion = "14.0.5"
	// BuildDate is the build date shown in the about panel.
	BuildDate = "30.10.2025"
	// BinaryName is the name of the executable and its notification app name.
	BinaryName = "region-switcher"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "region-switcher"
)

// File names used by the application.
const (
	ConfigFileName = "config.yaml"
	LogFileName    = "region-switcher.log"
)

// Simulated connection delays.
const (
	// InitialConnectDelay is how long the first connection takes after load.
	InitialConnectDelay = 1500 * time.Millisecond
	// RegionChangeDelay is how long a connection takes after a region change.
	RegionChangeDelay = 1000 * time.Millisecond
	// ToastDuration is how long a toast stays on screen.
	ToastDuration = 4 * time.Second
	// ConnectTimeout bounds the headless connect command.
	ConnectTimeout = 10 * time.Second
)

// UI constants.
const (
	// MaxContentWidth mirrors the narrow mobile layout.
	MaxContentWidth = 56
	// MaxToasts is the number of toasts kept on screen at once.
	MaxToasts = 3
)

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

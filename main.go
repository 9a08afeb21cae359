// Package main provides the entry point for Region Switcher.
// Region Switcher is a terminal mockup of a mobile VPN region switcher:
// a fixed catalog of regions, a simulated connection, access-code input
// and clipboard copy of the selected region's credentials.
//
// Usage:
//
//	region-switcher [command] [flags]
//
// Without a command the interactive interface starts.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yllada/region-switcher/cli"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z)
// Default values are used for local development builds
var (
	appVersion = "dev"
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

func main() {
	// Cancel on SIGINT/SIGTERM so the interface and headless commands can
	// stop their timers before exiting.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Execute(ctx, cli.BuildInfo{
		Version:   appVersion,
		BuildTime: buildTime,
		CommitSHA: commitSHA,
	})
	if err != nil {
		// Cobra already printed the error.
		stop()
		os.Exit(1)
	}
}

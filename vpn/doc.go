// Package vpn provides the region catalog and the simulated VPN session of
// Region Switcher.
//
// No tunnel is ever opened. The package models what the user sees: which
// region is selected, whether the connection is "connecting" or
// "connected", and which notifications accompany each step.
//
// # Architecture
//
// The package is organized around three types:
//
//   - Catalog: the fixed, validated table of regions with lookups by
//     country code and by access code
//   - Session: the complete interface state, changed only by Session.Apply,
//     which returns the next state plus a list of effects
//   - Simulator: a driver that performs those effects with real timers,
//     used by the headless commands
//
// The terminal UI is a second driver of the same Session.
//
// # Connection Flow
//
//  1. Load (or a region change) moves the session to connecting, increments
//     the generation and requests a ScheduleEffect
//  2. The driver waits for the delay and applies Complete{Generation}
//  3. If the generation is still current the session becomes connected and
//     a success notification is requested; otherwise nothing happens
//
// # Thread Safety
//
// Session is a value and is not synchronized. Simulator is safe for
// concurrent use.
package vpn

// Package ui provides the terminal user interface for Region Switcher.
//
// The interface is a Bubble Tea program that imitates a single mobile
// screen: a header, one of six panels, toasts and a bottom navigation bar.
//
// # Architecture
//
// Model owns a vpn.Session and never changes it directly. Every key press
// becomes a vpn.Action; Session.Apply returns the next session plus
// effects, and Model turns each effect into a tea.Cmd:
//
//   - vpn.ScheduleEffect: a tea.Tick that reports the completion generation
//   - vpn.NotifyEffect: a toast, plus a desktop notification when enabled
//   - vpn.CopyEffect: a clipboard write
//
// Stale completions are ignored by the session itself, so overlapping
// ticks are harmless.
//
// # File Organization
//
//   - app.go: program construction and Run
//   - model.go: Model, Init and Update
//   - effects.go: effect to command translation
//   - keymap.go: key bindings and help
//   - toast.go: toast stack
//   - clipboard.go: system clipboard adapter
//   - view.go, panels.go: rendering
//   - styles.go: palette and lipgloss styles
package ui

// Package notify defines the user-facing notifications of Region Switcher
// and the surfaces that display them.
//
// A Notification is a plain value produced by session transitions. It is
// rendered as a toast by the terminal UI, printed as a line by the headless
// connect command, and optionally mirrored to the desktop through the
// org.freedesktop.Notifications D-Bus service.
//
// All message texts are Russian, matching the rest of the interface.
package notify

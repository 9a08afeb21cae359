// Package ui provides the terminal user interface for Region Switcher.
// This file contains the color palette and lipgloss styles.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/yllada/region-switcher/common"
	"github.com/yllada/region-switcher/notify"
)

// Palette. State colors follow the GNOME palette used for connection
// states: green for connected, amber for connecting, red for errors.
var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#1C71D8", Dark: "#3584E4"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#9141AC", Dark: "#C061CB"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#26A269", Dark: "#2EC27E"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#C88800", Dark: "#E5A50A"}
	colorError   = lipgloss.AdaptiveColor{Light: "#C01C28", Dark: "#E01B24"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#77767B", Dark: "#9A9996"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#DEDDDA", Dark: "#3D3846"}
	colorText    = lipgloss.AdaptiveColor{Light: "#241F31", Dark: "#F6F5F4"}
)

// Styles groups every style the views use.
type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Heading    lipgloss.Style
	Card       lipgloss.Style
	CardActive lipgloss.Style
	Muted      lipgloss.Style
	Mono       lipgloss.Style
	Accent     lipgloss.Style
	Big        lipgloss.Style

	BadgeConnected  lipgloss.Style
	BadgeConnecting lipgloss.Style
	BadgeIdle       lipgloss.Style

	SwitchOn  lipgloss.Style
	SwitchOff lipgloss.Style
	Cursor    lipgloss.Style

	NavItem       lipgloss.Style
	NavItemActive lipgloss.Style
	NavBar        lipgloss.Style

	Toast        lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastLoading lipgloss.Style
}

// DefaultStyles returns the styles for the given content width.
func DefaultStyles(width int) Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		Width(width - 2)

	toast := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		Padding(0, 1).
		Foreground(colorText)

	badge := lipgloss.NewStyle().Padding(0, 1).Bold(true)

	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Subtitle:   lipgloss.NewStyle().Foreground(colorMuted),
		Heading:    lipgloss.NewStyle().Bold(true).Foreground(colorText),
		Card:       card,
		CardActive: card.BorderForeground(colorPrimary),
		Muted:      lipgloss.NewStyle().Foreground(colorMuted),
		Mono:       lipgloss.NewStyle().Foreground(colorPrimary),
		Accent:     lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),
		Big:        lipgloss.NewStyle().Bold(true).Foreground(colorAccent),

		BadgeConnected:  badge.Foreground(lipgloss.Color("#FFFFFF")).Background(colorSuccess),
		BadgeConnecting: badge.Foreground(lipgloss.Color("#FFFFFF")).Background(colorWarning),
		BadgeIdle:       badge.Foreground(colorText).Background(colorBorder),

		SwitchOn:  lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		SwitchOff: lipgloss.NewStyle().Foreground(colorMuted),
		Cursor:    lipgloss.NewStyle().Foreground(colorPrimary).Bold(true),

		NavItem:       lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1),
		NavItemActive: lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Underline(true).Padding(0, 1),
		NavBar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorBorder).
			Width(width),

		Toast:        toast.BorderForeground(colorPrimary),
		ToastSuccess: toast.BorderForeground(colorSuccess),
		ToastError:   toast.BorderForeground(colorError),
		ToastLoading: toast.BorderForeground(colorWarning),
	}
}

// toastStyle picks the style for a notification kind.
func (s Styles) toastStyle(k notify.Kind) lipgloss.Style {
	switch k {
	case notify.KindSuccess:
		return s.ToastSuccess
	case notify.KindError:
		return s.ToastError
	case notify.KindLoading:
		return s.ToastLoading
	default:
		return s.Toast
	}
}

// ApplyTheme forces the light or dark palette. "auto" keeps the terminal's
// detected background.
func ApplyTheme(theme string) {
	switch theme {
	case common.ThemeDark:
		lipgloss.SetHasDarkBackground(true)
	case common.ThemeLight:
		lipgloss.SetHasDarkBackground(false)
	}
}

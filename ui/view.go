package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yllada/region-switcher/common"
	"github.com/yllada/region-switcher/notify"
	"github.com/yllada/region-switcher/vpn"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.renderPanel(),
	}
	if toasts := m.renderToasts(); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections,
		m.renderNav(),
		m.help.View(m.keys),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := m.styles.Title.Render(common.AppName)
	version := m.styles.Subtitle.Render("Версия " + common.AppVersion)
	return lipgloss.JoinVertical(lipgloss.Left, title, version, "")
}

func (m Model) renderPanel() string {
	switch m.session.ActiveTab {
	case vpn.TabRegion:
		return m.renderRegionPanel()
	case vpn.TabSettings:
		return m.renderSettingsPanel()
	case vpn.TabProfile:
		return m.renderProfilePanel()
	case vpn.TabAbout:
		return m.renderAboutPanel()
	case vpn.TabHelp:
		return m.renderHelpPanel()
	default:
		return m.renderHomePanel()
	}
}

// renderBadge renders the connection status badge.
func (m Model) renderBadge() string {
	switch m.session.Status {
	case vpn.StatusConnected:
		return m.styles.BadgeConnected.Render(m.session.Status.Label())
	case vpn.StatusConnecting:
		return m.spinner.View() + " " + m.styles.BadgeConnecting.Render(m.session.Status.Label())
	default:
		return m.styles.BadgeIdle.Render(m.session.Status.Label())
	}
}

// renderSwitch renders a boolean switch with its label.
func (m Model) renderSwitch(label string, on bool) string {
	if on {
		return m.styles.SwitchOn.Render("[●]") + " " + label
	}
	return m.styles.SwitchOff.Render("[ ]") + " " + label
}

func (m Model) renderToasts() string {
	items := m.toasts.Items()
	if len(items) == 0 {
		return ""
	}

	width := m.contentWidth() - 4
	lines := make([]string, 0, len(items))
	for _, t := range items {
		text := fmt.Sprintf("%s %s", notify.Marker(t.Kind), t.Message)
		lines = append(lines, m.styles.toastStyle(t.Kind).Render(truncate(text, width)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderNav() string {
	items := make([]string, 0, len(vpn.Tabs))
	for i, tab := range vpn.Tabs {
		label := fmt.Sprintf("%d %s", i+1, tab.Label())
		if tab == m.session.ActiveTab {
			items = append(items, m.styles.NavItemActive.Render(label))
		} else {
			items = append(items, m.styles.NavItem.Render(label))
		}
	}

	// Two rows keep six Cyrillic labels inside the narrow layout.
	half := len(items) / 2
	rows := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, items[:half]...),
		lipgloss.JoinHorizontal(lipgloss.Top, items[half:]...),
	)
	return m.styles.NavBar.Render(rows)
}

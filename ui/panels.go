package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yllada/region-switcher/common"
	"github.com/yllada/region-switcher/vpn"
)

// faq is the content of the help panel.
var faq = []struct{ Question, Answer string }{
	{"Как изменить регион?", `Перейдите в раздел "Регион" и выберите нужную страну из списка.`},
	{"Автосмена не работает?", "Убедитесь, что функция включена в настройках на главном экране."},
	{"Техподдержка", "Напишите нам: support@tiktokmod.app"},
}

func settingLabel(s vpn.Setting) string {
	switch s {
	case vpn.SettingNotifications:
		return "Уведомления"
	case vpn.SettingSafeMode:
		return "Безопасный режим"
	case vpn.SettingAutoRegion:
		return "Авто-подключение"
	default:
		return s.String()
	}
}

func (m Model) settingValue(s vpn.Setting) bool {
	switch s {
	case vpn.SettingNotifications:
		return m.session.Notifications
	case vpn.SettingSafeMode:
		return m.session.SafeMode
	case vpn.SettingAutoRegion:
		return m.session.AutoRegion
	default:
		return false
	}
}

func (m Model) renderHomePanel() string {
	selected := m.session.Selected
	inner := m.contentWidth() - 4

	status := m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Muted.Render("Статус подключения"),
		m.styles.Heading.Render(selected.String()),
		m.renderBadge(),
	))

	auto := m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderSwitch("Автосмена региона", m.session.AutoRegion),
		m.styles.Muted.Render("При запуске приложения"),
	))

	code := m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Muted.Render("VPN код"),
		m.styles.Mono.Render(selected.AccessCode)+"  "+m.styles.Muted.Render("[c] копировать"),
	))

	subscription := m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Muted.Render("VPN ссылка")+"  "+m.styles.Muted.Render("[u] копировать"),
		m.styles.Mono.Render(truncate(selected.SubscriptionURL, inner)),
	))

	inputCard := m.styles.Card
	if m.input.Focused() {
		inputCard = m.styles.CardActive
	}
	quick := inputCard.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Muted.Render("Быстрое подключение  [i]"),
		m.input.View(),
	))

	stats := m.styles.Card.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderStat("47", "Переключений"),
		"    ",
		m.renderStat("12ч", "Активность"),
	))

	return lipgloss.JoinVertical(lipgloss.Left, status, auto, code, subscription, quick, stats)
}

func (m Model) renderStat(value, label string) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Big.Render(value),
		m.styles.Muted.Render(label),
	)
}

func (m Model) renderRegionPanel() string {
	catalog := m.session.Catalog()
	rows := []string{m.styles.Heading.Render("Выбор региона")}

	for i, region := range catalog.List() {
		card := m.styles.Card
		if i == m.regionCursor {
			card = m.styles.CardActive
		}

		mark := "  "
		if region.Code == m.session.Selected.Code {
			mark = m.styles.SwitchOn.Render("✓ ")
		}

		body := lipgloss.JoinVertical(lipgloss.Left,
			mark+m.styles.Heading.Render(region.String()),
			m.styles.Muted.Render(region.Code+" · ")+m.styles.Mono.Render(region.AccessCode),
		)
		rows = append(rows, card.Render(body))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderSettingsPanel() string {
	rows := make([]string, 0, len(settingsOrder))
	for i, setting := range settingsOrder {
		cursor := "  "
		if i == m.settingsCursor {
			cursor = m.styles.Cursor.Render("› ")
		}
		rows = append(rows, cursor+m.renderSwitch(settingLabel(setting), m.settingValue(setting)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Heading.Render("Настройки"),
		m.styles.Card.Render(strings.Join(rows, "\n")),
	)
}

func (m Model) renderProfilePanel() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Heading.Render("Профиль"),
		m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Heading.Render("Пользователь"),
			m.styles.Muted.Render("user@tiktok.mod"),
			m.styles.BadgeConnected.Render("Premium"),
		)),
	)
}

func (m Model) renderAboutPanel() string {
	row := func(label, value string) string {
		return fmt.Sprintf("%s  %s", m.styles.Muted.Render(label), value)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Heading.Render("О приложении"),
		m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Title.Render(common.AppName),
			m.styles.Muted.Render("Версия "+common.AppVersion),
			"",
			row("Дата сборки", common.BuildDate),
			row("Лицензия", "Premium"),
			row("Поддержка", m.styles.SwitchOn.Render("Активна")),
		)),
	)
}

func (m Model) renderHelpPanel() string {
	rows := []string{m.styles.Heading.Render("Помощь")}
	for _, entry := range faq {
		rows = append(rows, m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Accent.Render(entry.Question),
			m.styles.Muted.Width(m.contentWidth()-4).Render(entry.Answer),
		)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

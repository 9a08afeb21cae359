package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yllada/region-switcher/common"
	"github.com/yllada/region-switcher/notify"
	"github.com/yllada/region-switcher/vpn"
)

// dispatch applies a to the session and turns the resulting effects into
// commands.
func (m *Model) dispatch(a vpn.Action) tea.Cmd {
	next, effects := m.session.Apply(a)
	m.session = next

	// A finished or abandoned connection makes its loading toast obsolete.
	if next.Status != vpn.StatusConnecting {
		m.toasts.DismissKind(notify.KindLoading)
	}

	var cmds []tea.Cmd
	for _, effect := range effects {
		if cmd := m.perform(effect); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) perform(effect vpn.Effect) tea.Cmd {
	switch e := effect.(type) {
	case vpn.ScheduleEffect:
		return scheduleCmd(e.Delay, e.Generation)
	case vpn.NotifyEffect:
		cmd := m.toasts.Push(e.Notification, m.toastDuration)
		if m.desktop != nil && m.session.Notifications {
			return tea.Batch(cmd, desktopCmd(m.desktop, e.Notification))
		}
		return cmd
	case vpn.CopyEffect:
		return copyCmd(m.clipboard, e.Text)
	}
	return nil
}

func scheduleCmd(delay time.Duration, generation uint64) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return connectCompleteMsg{Generation: generation}
	})
}

func copyCmd(clip common.Clipboard, text string) tea.Cmd {
	if clip == nil {
		return nil
	}
	return func() tea.Msg {
		if err := clip.WriteAll(text); err != nil {
			common.LogWarn("Clipboard write failed: %v", err)
		}
		return nil
	}
}

func desktopCmd(n notify.Notifier, notification notify.Notification) tea.Cmd {
	return func() tea.Msg {
		if err := n.Notify(notification); err != nil {
			common.LogWarn("Desktop notification failed: %v", err)
		}
		return nil
	}
}

package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yllada/region-switcher/common"
	"github.com/yllada/region-switcher/notify"
	"github.com/yllada/region-switcher/vpn"
)

// Messages produced by commands of this package.
type (
	// loadMsg starts the session once the program is running.
	loadMsg struct{}
	// connectCompleteMsg reports that a scheduled delay has elapsed.
	connectCompleteMsg struct{ Generation uint64 }
)

// settingsOrder is the row order of the settings panel.
var settingsOrder = []vpn.Setting{
	vpn.SettingNotifications,
	vpn.SettingSafeMode,
	vpn.SettingAutoRegion,
}

// Options configures a new Model.
type Options struct {
	Session vpn.Session
	// Clipboard receives copy actions. Nil disables clipboard writes.
	Clipboard common.Clipboard
	// Desktop mirrors toasts to the desktop. Nil disables mirroring.
	Desktop notify.Notifier
	// ToastDuration is how long a toast stays visible.
	ToastDuration time.Duration
}

// Model is the Bubble Tea model of the application.
type Model struct {
	session vpn.Session

	keys    KeyMap
	help    help.Model
	input   textinput.Model
	spinner spinner.Model
	styles  Styles
	toasts  toastStack

	clipboard     common.Clipboard
	desktop       notify.Notifier
	toastDuration time.Duration

	regionCursor   int
	settingsCursor int

	width    int
	height   int
	quitting bool
}

// NewModel creates the model for opts.Session.
func NewModel(opts Options) Model {
	input := textinput.New()
	input.Placeholder = "Введите VPN код"
	input.CharLimit = 32
	input.Prompt = "› "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorWarning)

	duration := opts.ToastDuration
	if duration <= 0 {
		duration = common.ToastDuration
	}

	m := Model{
		session:       opts.Session,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		input:         input,
		spinner:       sp,
		styles:        DefaultStyles(common.MaxContentWidth),
		toasts:        newToastStack(common.MaxToasts),
		clipboard:     opts.Clipboard,
		desktop:       opts.Desktop,
		toastDuration: duration,
	}
	if idx := opts.Session.Catalog().IndexOf(opts.Session.Selected.Code); idx >= 0 {
		m.regionCursor = idx
	}
	return m
}

// Session returns the current session.
func (m Model) Session() vpn.Session {
	return m.session
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg { return loadMsg{} },
		m.spinner.Tick,
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.styles = DefaultStyles(m.contentWidth())
		m.help.Width = m.contentWidth()
		return m, nil

	case loadMsg:
		return m, m.dispatch(vpn.Load{})

	case connectCompleteMsg:
		return m, m.dispatch(vpn.Complete{Generation: msg.Generation})

	case toastExpiredMsg:
		m.toasts.Remove(msg.ID)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a key press to the focused input or to the active tab.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.input.Focused() {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		return m, m.dispatch(vpn.SelectTab{Tab: m.session.ActiveTab.Next(1)})
	case key.Matches(msg, m.keys.PrevTab):
		return m, m.dispatch(vpn.SelectTab{Tab: m.session.ActiveTab.Next(-1)})
	}

	for i, binding := range m.keys.Tabs {
		if key.Matches(msg, binding) {
			return m, m.dispatch(vpn.SelectTab{Tab: vpn.Tabs[i]})
		}
	}

	switch m.session.ActiveTab {
	case vpn.TabHome:
		return m.handleHomeKey(msg)
	case vpn.TabRegion:
		return m.handleRegionKey(msg)
	case vpn.TabSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		cmd := m.dispatch(vpn.SubmitCode{})
		m.input.SetValue(m.session.PendingInput)
		if m.session.PendingInput == "" {
			m.input.Blur()
		}
		return m, cmd
	case key.Matches(msg, m.keys.Blur):
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.session.PendingInput {
		m.dispatch(vpn.SetInput{Text: m.input.Value()})
	}
	return m, cmd
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CopyCode):
		return m, m.dispatch(vpn.CopyAccessCode{})
	case key.Matches(msg, m.keys.CopyURL):
		return m, m.dispatch(vpn.CopySubscriptionURL{})
	case key.Matches(msg, m.keys.ToggleAuto):
		return m, m.dispatch(vpn.ToggleSetting{Setting: vpn.SettingAutoRegion})
	case key.Matches(msg, m.keys.FocusInput):
		return m, m.input.Focus()
	}
	return m, nil
}

func (m Model) handleRegionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	catalog := m.session.Catalog()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.regionCursor = moveCursor(m.regionCursor, -1, catalog.Len())
	case key.Matches(msg, m.keys.Down):
		m.regionCursor = moveCursor(m.regionCursor, 1, catalog.Len())
	case key.Matches(msg, m.keys.Select):
		return m, m.dispatch(vpn.SelectRegion{Region: catalog.At(m.regionCursor)})
	}
	return m, nil
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.settingsCursor = moveCursor(m.settingsCursor, -1, len(settingsOrder))
	case key.Matches(msg, m.keys.Down):
		m.settingsCursor = moveCursor(m.settingsCursor, 1, len(settingsOrder))
	case key.Matches(msg, m.keys.Select):
		return m, m.dispatch(vpn.ToggleSetting{Setting: settingsOrder[m.settingsCursor]})
	}
	return m, nil
}

// moveCursor moves a list cursor by delta, wrapping at both ends.
func moveCursor(cursor, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((cursor+delta)%n + n) % n
}

func (m Model) contentWidth() int {
	if m.width <= 0 || m.width > common.MaxContentWidth {
		return common.MaxContentWidth
	}
	return m.width
}

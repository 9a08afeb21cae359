package ui

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yllada/region-switcher/notify"
	"github.com/yllada/region-switcher/vpn"
)

type fakeClipboard struct {
	mu   sync.Mutex
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func (f *fakeClipboard) contents() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text
}

type recordingNotifier struct {
	mu  sync.Mutex
	got []notify.Notification
}

func (r *recordingNotifier) Notify(n notify.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
	return nil
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.got)
}

func newTestModel(clip *fakeClipboard, desktop notify.Notifier) Model {
	opts := vpn.DefaultOptions()
	opts.Delays = vpn.Delays{Initial: time.Millisecond, Change: time.Millisecond}

	o := Options{
		Session:       vpn.NewSession(vpn.DefaultCatalog(), opts),
		ToastDuration: time.Millisecond,
	}
	if clip != nil {
		o.Clipboard = clip
	}
	if desktop != nil {
		o.Desktop = desktop
	}
	return NewModel(o)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update must return a Model")
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = update(t, m, runes(string(r)))
	}
	return m
}

// drain runs cmd and every command it batches, returning the messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func completions(msgs []tea.Msg) []connectCompleteMsg {
	var out []connectCompleteMsg
	for _, msg := range msgs {
		if c, ok := msg.(connectCompleteMsg); ok {
			out = append(out, c)
		}
	}
	return out
}

func toastMessages(m Model) []string {
	var out []string
	for _, t := range m.toasts.Items() {
		out = append(out, t.Message)
	}
	return out
}

func TestModel_LoadConnectsToDefaultRegion(t *testing.T) {
	m := newTestModel(nil, nil)

	m, cmd := update(t, m, loadMsg{})
	assert.Equal(t, vpn.StatusConnecting, m.Session().Status)
	assert.Empty(t, toastMessages(m), "load shows no loading toast")

	done := completions(drain(cmd))
	require.Len(t, done, 1)

	m, _ = update(t, m, done[0])
	assert.True(t, m.Session().Connected())
	assert.Equal(t, []string{"Регион изменен на Беларусь 🇧🇾"}, toastMessages(m))
}

func TestModel_LoadWithoutAutoRegion(t *testing.T) {
	opts := vpn.DefaultOptions()
	opts.AutoRegion = false
	m := NewModel(Options{Session: vpn.NewSession(vpn.DefaultCatalog(), opts)})

	m, cmd := update(t, m, loadMsg{})
	assert.Equal(t, vpn.StatusDisconnected, m.Session().Status)
	assert.Empty(t, completions(drain(cmd)))
}

func TestModel_TabNavigation(t *testing.T) {
	m := newTestModel(nil, nil)

	tests := []struct {
		name string
		key  tea.KeyMsg
		want vpn.Tab
	}{
		{"number selects settings", runes("3"), vpn.TabSettings},
		{"tab moves forward", tea.KeyMsg{Type: tea.KeyTab}, vpn.TabProfile},
		{"shift+tab moves back", tea.KeyMsg{Type: tea.KeyShiftTab}, vpn.TabSettings},
		{"same tab is a no-op", runes("3"), vpn.TabSettings},
		{"number selects help", runes("6"), vpn.TabHelp},
		{"tab wraps to home", tea.KeyMsg{Type: tea.KeyTab}, vpn.TabHome},
	}

	for _, tt := range tests {
		var cmd tea.Cmd
		m, cmd = update(t, m, tt.key)
		assert.Equal(t, tt.want, m.Session().ActiveTab, tt.name)
		assert.Nil(t, cmd, tt.name)
	}
}

func TestModel_SelectRegionFromList(t *testing.T) {
	m := newTestModel(nil, nil)
	m, _ = update(t, m, runes("2"))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "RU", m.Session().Selected.Code)
	assert.Equal(t, vpn.StatusConnecting, m.Session().Status)
	assert.Equal(t, []string{"Подключение..."}, toastMessages(m))

	done := completions(drain(cmd))
	require.Len(t, done, 1)

	m, _ = update(t, m, done[0])
	assert.True(t, m.Session().Connected())
	assert.Equal(t, []string{"Регион изменен на Россия 🇷🇺"}, toastMessages(m),
		"completion replaces the loading toast")
}

func TestModel_StaleCompletionIgnored(t *testing.T) {
	m := newTestModel(nil, nil)
	m, _ = update(t, m, loadMsg{})
	stale := m.Session().Generation

	m, _ = update(t, m, runes("2"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "US", m.Session().Selected.Code, "cursor wraps from the first region to the last")

	m, _ = update(t, m, connectCompleteMsg{Generation: stale})
	assert.Equal(t, vpn.StatusConnecting, m.Session().Status)

	m, _ = update(t, m, connectCompleteMsg{Generation: m.Session().Generation})
	assert.True(t, m.Session().Connected())
	assert.Equal(t, "US", m.Session().Selected.Code)
}

func TestModel_SubmitValidCode(t *testing.T) {
	m := newTestModel(nil, nil)

	m, _ = update(t, m, runes("i"))
	require.True(t, m.input.Focused())

	m = typeText(t, m, "KZ-ALA-3956")
	assert.Equal(t, "KZ-ALA-3956", m.Session().PendingInput)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "KZ", m.Session().Selected.Code)
	assert.Empty(t, m.Session().PendingInput)
	assert.Empty(t, m.input.Value())
	assert.False(t, m.input.Focused())
	assert.Len(t, completions(drain(cmd)), 1)
}

func TestModel_SubmitInvalidCode(t *testing.T) {
	m := newTestModel(nil, nil)

	m, _ = update(t, m, runes("/"))
	m = typeText(t, m, "BAD")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "BY", m.Session().Selected.Code)
	assert.Equal(t, vpn.StatusDisconnected, m.Session().Status)
	assert.Equal(t, "BAD", m.input.Value())
	assert.True(t, m.input.Focused())
	assert.Equal(t, []string{"Неверный VPN код"}, toastMessages(m))
}

func TestModel_FocusedInputCapturesKeys(t *testing.T) {
	m := newTestModel(nil, nil)
	m, _ = update(t, m, runes("i"))

	m, _ = update(t, m, runes("q"))
	assert.Equal(t, "q", m.input.Value())
	assert.False(t, m.quitting)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.input.Focused())
	assert.Equal(t, "q", m.Session().PendingInput)
}

func TestModel_CopyActions(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(clip, nil)

	m, cmd := update(t, m, runes("c"))
	drain(cmd)
	assert.Equal(t, "BY-MSK-5729", clip.contents())
	assert.Equal(t, []string{"VPN код скопирован!"}, toastMessages(m))

	m, cmd = update(t, m, runes("u"))
	drain(cmd)
	assert.Equal(t, vpn.DefaultCatalog().Default().SubscriptionURL, clip.contents())
	assert.Contains(t, toastMessages(m), "VPN ссылка скопирована!")
}

func TestModel_CopyFailureStillNotifies(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no clipboard")}
	m := newTestModel(clip, nil)

	m, cmd := update(t, m, runes("c"))
	assert.NotPanics(t, func() { drain(cmd) })
	assert.Equal(t, []string{"VPN код скопирован!"}, toastMessages(m))
}

func TestModel_SettingsToggle(t *testing.T) {
	m := newTestModel(nil, nil)
	m, _ = update(t, m, runes("3"))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Session().Notifications)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Session().SafeMode)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Session().AutoRegion)

	m, _ = update(t, m, runes("1"))
	m, _ = update(t, m, runes("a"))
	assert.True(t, m.Session().AutoRegion, "home switch shares the auto-connect setting")
}

func TestModel_DesktopNotificationsFollowSetting(t *testing.T) {
	desktop := &recordingNotifier{}
	m := newTestModel(&fakeClipboard{}, desktop)

	m, cmd := update(t, m, runes("c"))
	drain(cmd)
	assert.Equal(t, 1, desktop.count())

	m, _ = update(t, m, runes("3"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.Session().Notifications)

	m, _ = update(t, m, runes("1"))
	m, cmd = update(t, m, runes("c"))
	drain(cmd)
	assert.Equal(t, 1, desktop.count())
	assert.Len(t, toastMessages(m), 2, "toasts render regardless of the setting")
}

func TestModel_ToastExpiry(t *testing.T) {
	m := newTestModel(nil, nil)

	m, cmd := update(t, m, runes("c"))
	require.Equal(t, 1, m.toasts.Len())

	var expired []toastExpiredMsg
	for _, msg := range drain(cmd) {
		if e, ok := msg.(toastExpiredMsg); ok {
			expired = append(expired, e)
		}
	}
	require.Len(t, expired, 1)

	m, _ = update(t, m, expired[0])
	assert.Equal(t, 0, m.toasts.Len())
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(nil, nil)

	m, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestModel_View(t *testing.T) {
	m := newTestModel(nil, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})

	home := m.View()
	for _, want := range []string{"TikTok Mod", "Версия 14.0.5", "Беларусь", "BY-MSK-5729", "Отключено", "47", "Переключений"} {
		assert.Contains(t, home, want)
	}
	for _, tab := range vpn.Tabs {
		assert.Contains(t, home, tab.Label())
	}

	pages := map[string][]string{
		"2": {"Выбор региона", "США", "US-NYC-9417"},
		"3": {"Уведомления", "Безопасный режим", "Авто-подключение"},
		"4": {"Пользователь", "user@tiktok.mod", "Premium"},
		"5": {"Дата сборки", "30.10.2025", "Активна"},
		"6": {"Как изменить регион?", "support@tiktokmod.app"},
	}
	for key, wants := range pages {
		page, _ := update(t, m, runes(key))
		view := page.View()
		for _, want := range wants {
			assert.True(t, strings.Contains(view, want), "tab %s should show %q", key, want)
		}
	}
}

func TestMoveCursor(t *testing.T) {
	assert.Equal(t, 0, moveCursor(0, 1, 0))
	assert.Equal(t, 1, moveCursor(0, 1, 5))
	assert.Equal(t, 4, moveCursor(0, -1, 5))
	assert.Equal(t, 0, moveCursor(4, 1, 5))
}

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all the key bindings of the interface.
type KeyMap struct {
	Tabs       []key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	CopyCode   key.Binding
	CopyURL    key.Binding
	FocusInput key.Binding
	Submit     key.Binding
	Blur       key.Binding
	ToggleAuto key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	tabKeys := []string{"1", "2", "3", "4", "5", "6"}
	tabHelp := []string{"главная", "регион", "настройки", "профиль", "о приложении", "помощь"}

	tabs := make([]key.Binding, len(tabKeys))
	for i := range tabKeys {
		tabs[i] = key.NewBinding(key.WithKeys(tabKeys[i]), key.WithHelp(tabKeys[i], tabHelp[i]))
	}

	return KeyMap{
		Tabs:       tabs,
		NextTab:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "след. вкладка")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "пред. вкладка")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "вверх")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "вниз")),
		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "выбрать")),
		CopyCode:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "копировать код")),
		CopyURL:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "копировать ссылку")),
		FocusInput: key.NewBinding(key.WithKeys("i", "/"), key.WithHelp("i", "ввести код")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "подключить")),
		Blur:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "отмена")),
		ToggleAuto: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "автосмена")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "справка")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "выход")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Select, k.CopyCode, k.FocusInput, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Tabs,
		{k.NextTab, k.PrevTab, k.Up, k.Down, k.Select},
		{k.CopyCode, k.CopyURL, k.FocusInput, k.Submit, k.Blur, k.ToggleAuto},
		{k.Help, k.Quit},
	}
}

package vpn

// Tab identifies one of the panels of the interface.
type Tab int

const (
	TabHome Tab = iota
	TabRegion
	TabSettings
	TabProfile
	TabAbout
	TabHelp
)

// Tabs lists all tabs in navigation order.
var Tabs = []Tab{TabHome, TabRegion, TabSettings, TabProfile, TabAbout, TabHelp}

// String returns the identifier of the tab.
func (t Tab) String() string {
	switch t {
	case TabHome:
		return "home"
	case TabRegion:
		return "region"
	case TabSettings:
		return "settings"
	case TabProfile:
		return "profile"
	case TabAbout:
		return "about"
	case TabHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Label returns the navigation label shown in the bottom bar.
func (t Tab) Label() string {
	switch t {
	case TabHome:
		return "Главная"
	case TabRegion:
		return "Регион"
	case TabSettings:
		return "Настройки"
	case TabProfile:
		return "Профиль"
	case TabAbout:
		return "О приложении"
	case TabHelp:
		return "Помощь"
	default:
		return ""
	}
}

// Valid reports whether t is one of the known tabs.
func (t Tab) Valid() bool {
	return t >= TabHome && t <= TabHelp
}

// Next returns the tab after t, wrapping around. Negative steps go back.
func (t Tab) Next(step int) Tab {
	n := len(Tabs)
	return Tab(((int(t)+step)%n + n) % n)
}

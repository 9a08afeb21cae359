// Package vpn provides the region catalog and the simulated connection
// session of Region Switcher.
// This file contains the Session state and its transition function.
package vpn

import (
	"strings"
	"time"

	"github.com/yllada/region-switcher/common"
	"github.com/yllada/region-switcher/notify"
)

// ConnectionStatus represents the state of the simulated connection.
type ConnectionStatus int

const (
	// StatusDisconnected indicates no connection has been established yet.
	StatusDisconnected ConnectionStatus = iota
	// StatusConnecting indicates a simulated connection is in progress.
	StatusConnecting
	// StatusConnected indicates the simulated connection is up.
	StatusConnected
)

// String returns a human-readable representation of the connection status.
func (s ConnectionStatus) String() string {
	switch s {
	case StatusDisconnected:
		return "Disconnected"
	case StatusConnecting:
		return "Connecting..."
	case StatusConnected:
		return "Connected"
	default:
		return "Unknown"
	}
}

// Label returns the localized badge text for the status.
func (s ConnectionStatus) Label() string {
	switch s {
	case StatusConnected:
		return "Подключено"
	case StatusConnecting:
		return "Подключение..."
	default:
		return "Отключено"
	}
}

// Setting identifies a boolean switch of the settings panel.
type Setting int

const (
	SettingAutoRegion Setting = iota
	SettingNotifications
	SettingSafeMode
)

// String returns the identifier of the setting.
func (s Setting) String() string {
	switch s {
	case SettingAutoRegion:
		return "auto_region"
	case SettingNotifications:
		return "notifications"
	case SettingSafeMode:
		return "safe_mode"
	default:
		return "unknown"
	}
}

// Delays holds the simulated connection times.
type Delays struct {
	// Initial is the delay between load and the first connection.
	Initial time.Duration
	// Change is the delay between a region change and its connection.
	Change time.Duration
}

// Options configures a new Session.
type Options struct {
	AutoRegion    bool
	Notifications bool
	SafeMode      bool
	Delays        Delays
}

// DefaultOptions returns options matching the default configuration.
func DefaultOptions() Options {
	return Options{
		AutoRegion:    true,
		Notifications: true,
		SafeMode:      true,
		Delays: Delays{
			Initial: common.InitialConnectDelay,
			Change:  common.RegionChangeDelay,
		},
	}
}

// Session is the complete state of one run of the interface.
// It is a value: Apply returns a new Session and leaves the receiver alone,
// so the owner decides when the new state becomes current.
type Session struct {
	ActiveTab    Tab
	Selected     Region
	Status       ConnectionStatus
	PendingInput string

	// Generation identifies the latest scheduled completion. Completions
	// carrying any other value are stale and ignored.
	Generation uint64

	AutoRegion    bool
	Notifications bool
	SafeMode      bool

	Delays Delays

	catalog *Catalog
}

// NewSession creates a session on the home tab with the catalog's default
// region selected and no connection.
func NewSession(catalog *Catalog, opts Options) Session {
	return Session{
		ActiveTab:     TabHome,
		Selected:      catalog.Default(),
		Status:        StatusDisconnected,
		AutoRegion:    opts.AutoRegion,
		Notifications: opts.Notifications,
		SafeMode:      opts.SafeMode,
		Delays:        opts.Delays,
		catalog:       catalog,
	}
}

// Catalog returns the catalog the session selects from.
func (s Session) Catalog() *Catalog {
	return s.catalog
}

// Connected reports whether the simulated connection is up.
func (s Session) Connected() bool {
	return s.Status == StatusConnected
}

// Action is an input to Session.Apply.
type Action interface {
	isAction()
}

// Load starts the session. With AutoRegion set it begins connecting to the
// selected region.
type Load struct{}

// SelectTab switches the visible panel.
type SelectTab struct{ Tab Tab }

// SelectRegion switches to a region and restarts the connection.
type SelectRegion struct{ Region Region }

// SetInput replaces the access-code input buffer.
type SetInput struct{ Text string }

// SubmitCode looks up the input buffer in the catalog.
type SubmitCode struct{}

// Complete reports that the delay scheduled for Generation has elapsed.
type Complete struct{ Generation uint64 }

// CopyAccessCode copies the selected region's access code.
type CopyAccessCode struct{}

// CopySubscriptionURL copies the selected region's subscription URL.
type CopySubscriptionURL struct{}

// ToggleSetting flips one of the settings switches.
type ToggleSetting struct{ Setting Setting }

func (Load) isAction()                {}
func (SelectTab) isAction()           {}
func (SelectRegion) isAction()        {}
func (SetInput) isAction()            {}
func (SubmitCode) isAction()          {}
func (Complete) isAction()            {}
func (CopyAccessCode) isAction()      {}
func (CopySubscriptionURL) isAction() {}
func (ToggleSetting) isAction()       {}

// Effect is a side effect requested by a transition. Drivers carry them out.
type Effect interface {
	isEffect()
}

// NotifyEffect asks the driver to show a notification.
type NotifyEffect struct {
	Notification notify.Notification
}

// ScheduleEffect asks the driver to deliver Complete{Generation} after Delay.
// A driver may drop any previously scheduled completion.
type ScheduleEffect struct {
	Delay      time.Duration
	Generation uint64
}

// CopyEffect asks the driver to write Text to the clipboard.
type CopyEffect struct {
	Text string
}

func (NotifyEffect) isEffect()   {}
func (ScheduleEffect) isEffect() {}
func (CopyEffect) isEffect()     {}

// Apply computes the state that follows a and the effects it requires.
// Unknown actions and actions that change nothing return s unchanged and no
// effects.
func (s Session) Apply(a Action) (Session, []Effect) {
	switch a := a.(type) {
	case Load:
		if !s.AutoRegion {
			return s, nil
		}
		return s.startConnecting(s.Delays.Initial)

	case SelectTab:
		if !a.Tab.Valid() || a.Tab == s.ActiveTab {
			return s, nil
		}
		s.ActiveTab = a.Tab
		return s, nil

	case SelectRegion:
		region, err := s.catalog.FindByCode(a.Region.Code)
		if err != nil {
			return s, nil
		}
		return s.changeRegion(region)

	case SetInput:
		s.PendingInput = a.Text
		return s, nil

	case SubmitCode:
		region, err := s.catalog.FindByAccessCode(strings.TrimSpace(s.PendingInput))
		if err != nil {
			return s, []Effect{NotifyEffect{Notification: notify.InvalidCode()}}
		}
		s.PendingInput = ""
		return s.changeRegion(region)

	case Complete:
		if a.Generation != s.Generation || s.Status != StatusConnecting {
			return s, nil
		}
		s.Status = StatusConnected
		return s, []Effect{NotifyEffect{Notification: notify.RegionChanged(s.Selected.Name, s.Selected.Flag)}}

	case CopyAccessCode:
		return s, []Effect{
			CopyEffect{Text: s.Selected.AccessCode},
			NotifyEffect{Notification: notify.AccessCodeCopied()},
		}

	case CopySubscriptionURL:
		return s, []Effect{
			CopyEffect{Text: s.Selected.SubscriptionURL},
			NotifyEffect{Notification: notify.SubscriptionURLCopied()},
		}

	case ToggleSetting:
		switch a.Setting {
		case SettingAutoRegion:
			s.AutoRegion = !s.AutoRegion
		case SettingNotifications:
			s.Notifications = !s.Notifications
		case SettingSafeMode:
			s.SafeMode = !s.SafeMode
		}
		return s, nil
	}

	return s, nil
}

// changeRegion selects region and restarts the simulated connection.
func (s Session) changeRegion(region Region) (Session, []Effect) {
	s.Selected = region
	s, effects := s.startConnecting(s.Delays.Change)
	return s, append([]Effect{NotifyEffect{Notification: notify.Connecting()}}, effects...)
}

// startConnecting moves to connecting and schedules a new generation,
// which makes every earlier completion stale.
func (s Session) startConnecting(delay time.Duration) (Session, []Effect) {
	s.Status = StatusConnecting
	s.Generation++
	return s, []Effect{ScheduleEffect{Delay: delay, Generation: s.Generation}}
}

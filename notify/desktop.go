package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/yllada/region-switcher/common"
)

const (
	dbusDest      = "org.freedesktop.Notifications"
	dbusPath      = dbus.ObjectPath("/org/freedesktop/Notifications")
	dbusNotify    = dbusDest + ".Notify"
	dbusTimeoutMS = int32(4000)
)

// Urgency hint values of org.freedesktop.Notifications.
const (
	urgencyLow      byte = 0
	urgencyNormal   byte = 1
	urgencyCritical byte = 2
)

// DesktopNotifier mirrors notifications to the desktop over the session
// bus. Notifications of one run replace each other instead of piling up.
type DesktopNotifier struct {
	conn     *dbus.Conn
	appName  string
	lastID   uint32
	disabled bool
}

// NewDesktopNotifier connects to the session bus.
func NewDesktopNotifier() (*DesktopNotifier, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return &DesktopNotifier{conn: conn, appName: common.AppName}, nil
}

// Notify sends n to org.freedesktop.Notifications.
// Loading notifications are skipped; the desktop shows the outcome only.
func (d *DesktopNotifier) Notify(n Notification) error {
	if d == nil || d.disabled || n.Kind == KindLoading {
		return nil
	}

	icon, urgency := desktopStyle(n.Kind)
	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(urgency),
	}

	obj := d.conn.Object(dbusDest, dbusPath)
	call := obj.Call(dbusNotify, 0,
		d.appName,
		d.lastID,
		icon,
		d.appName,
		n.Message,
		[]string{},
		hints,
		dbusTimeoutMS,
	)
	if call.Err != nil {
		return fmt.Errorf("desktop notification failed: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err == nil {
		d.lastID = id
	}
	return nil
}

// SetEnabled turns delivery on or off without dropping the bus connection.
func (d *DesktopNotifier) SetEnabled(enabled bool) {
	if d != nil {
		d.disabled = !enabled
	}
}

// Close releases the bus connection.
func (d *DesktopNotifier) Close() error {
	if d == nil || d.conn == nil {
		return nil
	}
	return d.conn.Close()
}

func desktopStyle(k Kind) (icon string, urgency byte) {
	switch k {
	case KindSuccess:
		return "network-vpn", urgencyLow
	case KindError:
		return "dialog-error", urgencyCritical
	default:
		return "network-vpn-acquiring", urgencyNormal
	}
}

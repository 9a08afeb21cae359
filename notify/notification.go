package notify

import "fmt"

// Kind represents the type of notification.
type Kind int

const (
	KindInfo Kind = iota
	KindLoading
	KindSuccess
	KindError
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindLoading:
		return "loading"
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Notification is a transient message shown to the user.
type Notification struct {
	Kind    Kind
	Message string
}

// Notifier displays notifications on some surface.
type Notifier interface {
	Notify(n Notification) error
}

// Message texts.
const (
	msgConnecting  = "Подключение..."
	msgInvalidCode = "Неверный VPN код"
	msgCodeCopied  = "VPN код скопирован!"
	msgURLCopied   = "VPN ссылка скопирована!"
)

// Connecting is shown when a region change starts.
func Connecting() Notification {
	return Notification{Kind: KindLoading, Message: msgConnecting}
}

// RegionChanged is shown when the simulated connection completes.
func RegionChanged(name, flag string) Notification {
	return Notification{Kind: KindSuccess, Message: fmt.Sprintf("Регион изменен на %s %s", name, flag)}
}

// InvalidCode is shown when a submitted access code matches no region.
func InvalidCode() Notification {
	return Notification{Kind: KindError, Message: msgInvalidCode}
}

// AccessCodeCopied confirms a clipboard write of the access code.
func AccessCodeCopied() Notification {
	return Notification{Kind: KindSuccess, Message: msgCodeCopied}
}

// SubscriptionURLCopied confirms a clipboard write of the subscription URL.
func SubscriptionURLCopied() Notification {
	return Notification{Kind: KindSuccess, Message: msgURLCopied}
}

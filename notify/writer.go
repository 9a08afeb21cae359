package notify

import (
	"fmt"
	"io"
	"sync"
)

// WriterNotifier prints one line per notification, prefixed with a marker
// for its kind. Used by the headless commands.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterNotifier creates a notifier printing to w.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// Notify writes n as a single line.
func (wn *WriterNotifier) Notify(n Notification) error {
	wn.mu.Lock()
	defer wn.mu.Unlock()
	_, err := fmt.Fprintf(wn.w, "%s %s\n", Marker(n.Kind), n.Message)
	return err
}

// Marker returns the glyph shown before a message of the given kind.
func Marker(k Kind) string {
	switch k {
	case KindLoading:
		return "…"
	case KindSuccess:
		return "✓"
	case KindError:
		return "✗"
	default:
		return "•"
	}
}

package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindInfo, "info"},
		{KindLoading, "loading"},
		{KindSuccess, "success"},
		{KindError, "error"},
		{Kind(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestMessages(t *testing.T) {
	assert.Equal(t, Notification{Kind: KindLoading, Message: "Подключение..."}, Connecting())
	assert.Equal(t, Notification{Kind: KindSuccess, Message: "Регион изменен на Россия 🇷🇺"}, RegionChanged("Россия", "🇷🇺"))
	assert.Equal(t, KindError, InvalidCode().Kind)
	assert.Equal(t, "Неверный VPN код", InvalidCode().Message)
	assert.Equal(t, "VPN код скопирован!", AccessCodeCopied().Message)
	assert.Equal(t, "VPN ссылка скопирована!", SubscriptionURLCopied().Message)
}

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriterNotifier(&buf)

	require.NoError(t, n.Notify(Connecting()))
	require.NoError(t, n.Notify(InvalidCode()))

	assert.Equal(t, "… Подключение...\n✗ Неверный VPN код\n", buf.String())
}

func TestDesktopNotifier_NilAndLoadingAreNoops(t *testing.T) {
	var d *DesktopNotifier
	assert.NoError(t, d.Notify(RegionChanged("США", "🇺🇸")))
	assert.NoError(t, d.Close())

	// A disconnected notifier must not touch the bus for skipped kinds.
	d = &DesktopNotifier{}
	assert.NoError(t, d.Notify(Connecting()))

	d.SetEnabled(false)
	assert.NoError(t, d.Notify(InvalidCode()))
}

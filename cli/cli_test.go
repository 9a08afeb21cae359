package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yllada/region-switcher/common"
	"github.com/yllada/region-switcher/vpn"
	"gopkg.in/yaml.v3"
)

func fastOptions() vpn.Options {
	opts := vpn.DefaultOptions()
	opts.Delays = vpn.Delays{Initial: 10 * time.Millisecond, Change: 10 * time.Millisecond}
	return opts
}

func TestListRegions_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(vpn.DefaultCatalog(), &buf).ListRegions(FormatTable))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2+vpn.DefaultCatalog().Len())
	assert.True(t, strings.HasPrefix(lines[0], "CODE"))

	for _, region := range vpn.DefaultCatalog().List() {
		assert.Contains(t, buf.String(), region.AccessCode)
	}
	assert.Contains(t, buf.String(), "…", "long subscription URLs are truncated")
}

func TestListRegions_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(vpn.DefaultCatalog(), &buf).ListRegions(FormatYAML))

	var decoded struct {
		Regions []regionEntry `yaml:"regions"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Regions, 5)
	assert.Equal(t, "BY", decoded.Regions[0].Code)
	assert.Equal(t, "US-NYC-9417", decoded.Regions[4].AccessCode)
}

func TestListRegions_UnknownFormat(t *testing.T) {
	err := New(vpn.DefaultCatalog(), &bytes.Buffer{}).ListRegions("json")
	assert.Error(t, err)
}

func TestLookup(t *testing.T) {
	var buf bytes.Buffer
	c := New(vpn.DefaultCatalog(), &buf)

	region, err := c.Lookup("  UA-KIV-6283 ")
	require.NoError(t, err)
	assert.Equal(t, "UA", region.Code)
	assert.Contains(t, buf.String(), "Украина")

	_, err = c.Lookup("ua-kiv-6283")
	assert.ErrorIs(t, err, common.ErrAccessCodeNotFound, "lookup is case-sensitive")
}

func TestConnect_Success(t *testing.T) {
	var buf bytes.Buffer
	c := New(vpn.DefaultCatalog(), &buf)

	session, err := c.Connect(context.Background(), "RU-SPB-8142", fastOptions(), time.Second)
	require.NoError(t, err)
	assert.True(t, session.Connected())
	assert.Equal(t, "RU", session.Selected.Code)

	assert.Equal(t, "… Подключение...\n✓ Регион изменен на Россия 🇷🇺\n", buf.String())
}

func TestConnect_InvalidCode(t *testing.T) {
	var buf bytes.Buffer
	c := New(vpn.DefaultCatalog(), &buf)

	session, err := c.Connect(context.Background(), "XX-XXX-0000", fastOptions(), time.Second)
	assert.ErrorIs(t, err, common.ErrAccessCodeNotFound)
	assert.Equal(t, vpn.StatusDisconnected, session.Status)
	assert.Equal(t, "✗ Неверный VPN код\n", buf.String())
}

func TestConnect_Timeout(t *testing.T) {
	opts := fastOptions()
	opts.Delays.Change = time.Hour

	_, err := New(vpn.DefaultCatalog(), &bytes.Buffer{}).
		Connect(context.Background(), "KZ-ALA-3956", opts, 20*time.Millisecond)
	assert.ErrorIs(t, err, common.ErrTimeout)
}

func TestConnect_Cancelled(t *testing.T) {
	opts := fastOptions()
	opts.Delays.Change = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(vpn.DefaultCatalog(), &bytes.Buffer{}).
		Connect(ctx, "KZ-ALA-3956", opts, time.Second)
	assert.ErrorIs(t, err, common.ErrCancelled)
}

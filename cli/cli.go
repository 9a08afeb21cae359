// Package cli provides the command-line interface of Region Switcher.
// Besides launching the terminal interface it lets users inspect the region
// catalog and run a headless connection from scripts.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/yllada/region-switcher/common"
	"github.com/yllada/region-switcher/notify"
	"github.com/yllada/region-switcher/vpn"
	"gopkg.in/yaml.v3"
)

// Output formats of the regions command.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// urlColumnWidth bounds the subscription URL column of the regions table.
const urlColumnWidth = 48

// CLI runs the headless operations against a catalog.
type CLI struct {
	catalog *vpn.Catalog
	out     io.Writer
}

// New creates a CLI writing to out.
func New(catalog *vpn.Catalog, out io.Writer) *CLI {
	return &CLI{catalog: catalog, out: out}
}

// regionEntry is the YAML form of a region.
type regionEntry struct {
	Code            string `yaml:"code"`
	Name            string `yaml:"name"`
	Flag            string `yaml:"flag"`
	AccessCode      string `yaml:"access_code"`
	SubscriptionURL string `yaml:"subscription_url"`
}

// ListRegions prints the catalog in the given format.
func (c *CLI) ListRegions(format string) error {
	switch format {
	case "", FormatTable:
		return c.printRegionTable()
	case FormatYAML:
		return c.printRegionYAML()
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatTable, FormatYAML)
	}
}

func (c *CLI) printRegionTable() error {
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tREGION\tACCESS CODE\tSUBSCRIPTION")
	fmt.Fprintln(w, "----\t------\t-----------\t------------")

	for _, region := range c.catalog.List() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			region.Code,
			region.Name,
			region.AccessCode,
			runewidth.Truncate(region.SubscriptionURL, urlColumnWidth, "…"))
	}

	return w.Flush()
}

func (c *CLI) printRegionYAML() error {
	regions := c.catalog.List()
	entries := make([]regionEntry, 0, len(regions))
	for _, r := range regions {
		entries = append(entries, regionEntry{
			Code:            r.Code,
			Name:            r.Name,
			Flag:            r.Flag,
			AccessCode:      r.AccessCode,
			SubscriptionURL: r.SubscriptionURL,
		})
	}

	enc := yaml.NewEncoder(c.out)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]regionEntry{"regions": entries}); err != nil {
		return fmt.Errorf("failed to encode regions: %w", err)
	}
	return enc.Close()
}

// Lookup prints the region an access code belongs to.
func (c *CLI) Lookup(accessCode string) (vpn.Region, error) {
	region, err := c.catalog.FindByAccessCode(strings.TrimSpace(accessCode))
	if err != nil {
		return vpn.Region{}, err
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Region:\t%s\n", region)
	fmt.Fprintf(w, "Code:\t%s\n", region.Code)
	fmt.Fprintf(w, "Access code:\t%s\n", region.AccessCode)
	fmt.Fprintf(w, "Subscription:\t%s\n", region.SubscriptionURL)
	return region, w.Flush()
}

// Connect submits accessCode to a fresh session and waits for the
// simulated connection, printing each notification as it happens.
func (c *CLI) Connect(ctx context.Context, accessCode string, opts vpn.Options, timeout time.Duration) (vpn.Session, error) {
	if timeout <= 0 {
		timeout = common.ConnectTimeout
	}

	// The headless session never auto-connects; the code decides the region.
	opts.AutoRegion = false
	session := vpn.NewSession(c.catalog, opts)

	sim := vpn.NewSimulator(session, notify.NewWriterNotifier(c.out), nil)
	defer sim.Close()

	sim.Dispatch(vpn.SetInput{Text: accessCode})
	sim.Dispatch(vpn.SubmitCode{})

	current := sim.Session()
	if current.Status != vpn.StatusConnecting {
		return current, fmt.Errorf("%w: %s", common.ErrAccessCodeNotFound, strings.TrimSpace(accessCode))
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	connected, err := sim.WaitConnected(ctx)
	if err != nil {
		return connected, fmt.Errorf("connection to %s did not complete: %w", current.Selected, err)
	}

	common.LogInfo("Connected to %s (generation %d)", connected.Selected.Code, connected.Generation)
	return connected, nil
}

package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/yllada/region-switcher/common"
	"github.com/yllada/region-switcher/config"
	"github.com/yllada/region-switcher/notify"
	"github.com/yllada/region-switcher/ui"
	"github.com/yllada/region-switcher/vpn"
	"golang.org/x/term"
)

// BuildInfo carries the values injected at build time.
type BuildInfo struct {
	Version   string
	BuildTime string
	CommitSHA string
}

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCmd builds the command tree.
func NewRootCmd(build BuildInfo) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   common.BinaryName,
		Short: "Switch the active VPN region from the terminal",
		Long: `region-switcher shows a mobile-style VPN region switcher in the terminal.
Regions can be picked from a list or by entering their access code; the
access code and subscription link of the selected region can be copied
to the clipboard.

Run without arguments to start the interactive interface.`,
		Version:      build.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd, opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInterface(cmd.Context(), opts)
		},
	}
	root.SetVersionTemplate(`{{printf "region-switcher version %s\n" .Version}}`)

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is ~/.config/region-switcher/config.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newRegionsCmd(),
		newLookupCmd(),
		newConnectCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(build),
	)

	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context, build BuildInfo) error {
	defer common.CloseLogger()
	return NewRootCmd(build).ExecuteContext(ctx)
}

func setupLogging(cmd *cobra.Command, verbose bool) error {
	level := common.LevelInfo
	if verbose {
		level = common.LevelDebug
	}

	err := common.InitLogger(common.LogConfig{
		Level:       level,
		EnableFile:  true,
		Console:     cmd.ErrOrStderr(),
		MaxFileSize: 5 * 1024 * 1024,
		MaxBackups:  5,
	})
	if err != nil {
		// File logging is optional; the console still works.
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Could not initialize file logging: %v\n", err)
	}

	common.GetLogger().SetSession(common.NewSessionID())
	return nil
}

// sessionOptions maps the configuration onto session options.
func sessionOptions(cfg *config.Config) vpn.Options {
	return vpn.Options{
		AutoRegion:    cfg.AutoRegion,
		Notifications: cfg.Notifications,
		SafeMode:      cfg.SafeMode,
		Delays: vpn.Delays{
			Initial: cfg.InitialDelay,
			Change:  cfg.ChangeDelay,
		},
	}
}

func runInterface(ctx context.Context, opts *rootOptions) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("%w: use a subcommand such as 'regions' or 'connect' for scripting", common.ErrNotATerminal)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	ui.ApplyTheme(cfg.Theme)

	var desktop notify.Notifier
	if cfg.DesktopNotifications {
		d, err := notify.NewDesktopNotifier()
		if err != nil {
			common.LogWarn("Desktop notifications unavailable: %v", err)
		} else {
			defer d.Close()
			desktop = d
		}
	}

	if !ui.ClipboardAvailable() {
		common.LogWarn("No clipboard utility found; copy actions will only show a toast")
	}

	common.LogInfo("Starting %s v%s", common.AppName, common.AppVersion)
	return ui.Run(ctx, ui.Options{
		Session:       vpn.NewSession(vpn.DefaultCatalog(), sessionOptions(cfg)),
		Clipboard:     ui.SystemClipboard{},
		Desktop:       desktop,
		ToastDuration: cfg.ToastDuration,
	})
}

func newRegionsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List the available regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return New(vpn.DefaultCatalog(), cmd.OutOrStdout()).ListRegions(output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", FormatTable, "output format: table or yaml")

	return cmd
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <access-code>",
		Short: "Show the region an access code belongs to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := New(vpn.DefaultCatalog(), cmd.OutOrStdout()).Lookup(args[0])
			return err
		},
	}
}

func newConnectCmd(opts *rootOptions) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "connect <access-code>",
		Short: "Switch to a region by access code without the interface",
		Long: `connect runs the same connection sequence as the interface and prints
each notification on its own line. It exits non-zero when the access code
is unknown or the connection does not complete within --timeout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			_, err = New(vpn.DefaultCatalog(), cmd.OutOrStdout()).
				Connect(cmd.Context(), args[0], sessionOptions(cfg), timeout)
			return err
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", common.ConnectTimeout, "maximum time to wait for the connection")

	return cmd
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			if common.FileExists(path) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func newVersionCmd(build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s (region-switcher %s)\n", common.AppName, common.AppVersion, build.Version)
			if build.BuildTime != "unknown" && build.BuildTime != "" {
				fmt.Fprintf(out, "  Build:  %s\n", build.BuildTime)
				fmt.Fprintf(out, "  Commit: %s\n", build.CommitSHA)
			}
		},
	}
}

// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"fjacquet/quicklog/internal/config"
	"fjacquet/quicklog/internal/container"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Config   string
	Ledger   string
	LogLevel string
	NoColor  bool
}

var (
	// SharedFlags holds the persistent flags of the root command.
	SharedFlags = CommonFlags{}

	mu  sync.Mutex
	app *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "quicklog",
		Short: "Log expenses, reminders, tasks and notes from plain sentences.",
		Long: `quicklog reads short free-form messages such as "Coffee £3.50" or
"Remind me to pay rent tomorrow", classifies each one as an expense, reminder,
task or note, and keeps the confirmed records in a YAML ledger.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := Container()
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			mu.Lock()
			defer mu.Unlock()
			if app == nil {
				return nil
			}
			return app.Close()
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.Config, "config", "", "Config file (default: config.yaml in $HOME/.quicklog, .quicklog or .)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Ledger, "ledger", "", "Ledger file (overrides ledger.file)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (overrides log.level)")
	Cmd.PersistentFlags().BoolVar(&SharedFlags.NoColor, "no-color", false, "Disable coloured output")
}

// Container returns the application container, building it from the
// configuration and the persistent flags on first use.
func Container() (*container.Container, error) {
	mu.Lock()
	defer mu.Unlock()
	if app != nil {
		return app, nil
	}

	cfg, err := config.Load(SharedFlags.Config)
	if err != nil {
		return nil, err
	}
	if SharedFlags.Ledger != "" {
		cfg.Ledger.File = SharedFlags.Ledger
	}
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	app = c
	return app, nil
}

// SetContainer installs c as the application container. Commands tests use it
// to run against a temporary ledger.
func SetContainer(c *container.Container) {
	mu.Lock()
	defer mu.Unlock()
	app = c
}

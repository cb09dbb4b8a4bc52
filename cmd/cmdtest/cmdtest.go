// Package cmdtest runs commands against a throwaway container.
package cmdtest

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/quicklog/cmd/common"
	"fjacquet/quicklog/cmd/root"
	"fjacquet/quicklog/internal/config"
	"fjacquet/quicklog/internal/container"
	"fjacquet/quicklog/internal/logging"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// Now is the fixed clock of every test container: Monday 19 October 2026.
var Now = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

// Config returns a valid configuration whose ledger lives in dir.
func Config(dir string) *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "debug"
	cfg.Log.Format = "text"
	cfg.Currency.Default = "GBP"
	cfg.Ledger.File = filepath.Join(dir, "ledger.yaml")
	cfg.CSV.Delimiter = ","
	cfg.Batch.Workers = 2
	return cfg
}

// Install builds a container over a temporary ledger, makes it the root
// container for the duration of the test and disables colours.
func Install(t *testing.T) (*container.Container, *logging.MockLogger) {
	t.Helper()
	logger := logging.NewMockLogger()
	c, err := container.NewContainer(Config(t.TempDir()),
		container.WithLogger(logger),
		container.WithClock(func() time.Time { return Now }))
	require.NoError(t, err)

	common.SetColor(false)
	root.SetContainer(c)
	t.Cleanup(func() { root.SetContainer(nil) })
	return c, logger
}

// Execute runs cmd with args and returns everything it printed.
func Execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	t.Cleanup(func() {
		cmd.SetOut(nil)
		cmd.SetErr(nil)
		cmd.SetArgs(nil)
	})
	err := cmd.Execute()
	return out.String(), err
}

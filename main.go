package main

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/quicklog/cmd/batch"
	"fjacquet/quicklog/cmd/chat"
	"fjacquet/quicklog/cmd/classify"
	"fjacquet/quicklog/cmd/done"
	"fjacquet/quicklog/cmd/edit"
	"fjacquet/quicklog/cmd/explain"
	"fjacquet/quicklog/cmd/export"
	"fjacquet/quicklog/cmd/list"
	"fjacquet/quicklog/cmd/remove"
	"fjacquet/quicklog/cmd/root"
	"fjacquet/quicklog/cmd/summary"
	"fjacquet/quicklog/internal/config"
	"fjacquet/quicklog/internal/logging"

	"github.com/sirupsen/logrus"
)

func init() {
	// .env must be loaded before anything reads QUICKLOG_ variables
	config.LoadEnvOrWarn(logging.GetLogger())

	logging.SetAllLogLevels(logLevelFromEnv())

	root.Init()
	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(chat.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(done.Cmd)
	root.Cmd.AddCommand(edit.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(explain.Cmd)
}

// logLevelFromEnv sets the level of the process-wide logger used before the
// container exists.
func logLevelFromEnv() logrus.Level {
	level, err := logrus.ParseLevel(strings.ToLower(os.Getenv(config.EnvPrefix + "_LOG_LEVEL")))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Package classify implements the classify command
package classify

import (
	"fmt"
	"strings"

	"fjacquet/quicklog/cmd/common"
	"fjacquet/quicklog/cmd/root"

	"github.com/spf13/cobra"
)

// Text is the message to classify.
var Text string

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify [message]",
	Short: "Classify a message without recording it",
	Long: `Classify a message as an expense, reminder, task, note or unknown and print
what would be recorded. Nothing is written to the ledger.

Example:
  quicklog classify -t "Coffee £3.50"`,
	RunE: classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Text, "text", "t", "", "Message to classify (defaults to the arguments)")
}

func classifyFunc(cmd *cobra.Command, args []string) error {
	text := Text
	if text == "" {
		text = strings.Join(args, " ")
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("a message is required: use --text or pass it as arguments")
	}

	app, err := root.Container()
	if err != nil {
		return err
	}
	parsed := app.GetParser().Classify(text)
	return common.WriteIntent(cmd.OutOrStdout(), parsed, app.GetConfig().Currency.Default)
}

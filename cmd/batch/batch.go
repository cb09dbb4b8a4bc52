// Package batch handles classification of whole files
package batch

import (
	"fmt"
	"sort"

	"fjacquet/quicklog/cmd/root"
	"fjacquet/quicklog/internal/logging"
	"fjacquet/quicklog/internal/models"
	"fjacquet/quicklog/internal/validation"

	"github.com/spf13/cobra"
)

// Input and Output are the file flags of the batch command.
var (
	Input  string
	Output string
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch classify a file of messages",
	Long: `Batch classify every non-empty line of a text file, or the "text" column of
a CSV file, and write one CSV row per message. Lines are classified
concurrently (batch.workers) and nothing is recorded in the ledger.

Example:
  quicklog batch -i messages.txt -o classified.csv`,
	RunE: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Input, "input", "i", "", "Input file (.txt one message per line, or .csv with a text column)")
	Cmd.Flags().StringVarP(&Output, "output", "o", "", "Output CSV file")
	_ = Cmd.MarkFlagRequired("input")
	_ = Cmd.MarkFlagRequired("output")
}

func batchFunc(cmd *cobra.Command, args []string) error {
	if err := validation.IsValidInputFile(Input); err != nil {
		return err
	}
	if err := validation.IsValidOutputFile(Output, Input); err != nil {
		return err
	}

	app, err := root.Container()
	if err != nil {
		return err
	}
	logger := app.GetLogger()
	logger.Info("Batch command called",
		logging.Field{Key: logging.FieldInputFile, Value: Input},
		logging.Field{Key: logging.FieldOutputFile, Value: Output})

	stats, err := app.GetBatchProcessor().ProcessFile(cmd.Context(), Input, Output, app.GetConfig().Delimiter())
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Classified %d messages into %s\n", stats.Total, Output)
	kinds := make([]string, 0, len(stats.ByKind))
	for kind := range stats.ByKind {
		kinds = append(kinds, kind.String())
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(out, "  %-9s %d\n", kind, stats.ByKind[models.Kind(kind)])
	}
	return nil
}

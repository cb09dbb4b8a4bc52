// Package export implements the export command
package export

import (
	"fmt"

	"fjacquet/quicklog/cmd/root"
	"fjacquet/quicklog/internal/common"
	"fjacquet/quicklog/internal/models"

	"github.com/spf13/cobra"
)

// Output is the CSV file to write.
var Output string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded expenses to CSV",
	Long: `Export every recorded expense to a CSV file using the configured delimiter.

Example:
  quicklog export -o expenses.csv`,
	Args: cobra.NoArgs,
	RunE: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Output, "output", "o", "", "Output CSV file")
	_ = Cmd.MarkFlagRequired("output")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	if Output == "" {
		return fmt.Errorf("an output file must be specified")
	}
	app, err := root.Container()
	if err != nil {
		return err
	}
	expenses, err := app.GetLedger().Expenses()
	if err != nil {
		return err
	}

	rows := make([]models.ExpenseRow, len(expenses))
	for i, e := range expenses {
		rows[i] = e.ToRow()
	}
	if err := common.WriteCSVFile(Output, rows, app.GetConfig().Delimiter(), app.GetLogger()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d expenses to %s\n", len(rows), Output)
	return nil
}

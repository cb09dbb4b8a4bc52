// Package summary implements the summary command
package summary

import (
	"fjacquet/quicklog/cmd/root"
	"fjacquet/quicklog/internal/report"
	"fjacquet/quicklog/internal/validation"

	"github.com/spf13/cobra"
)

// Format selects text, json or yaml output.
var Format string

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show spending totals and task progress",
	Long: `Show what was spent today and over the last seven days, the top five
categories, the five most recent expenses and how many tasks are pending.`,
	Args: cobra.NoArgs,
	RunE: summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Format, "format", "f", report.FormatText, "Output format: text, json or yaml")
}

func summaryFunc(cmd *cobra.Command, args []string) error {
	if err := validation.IsValidReportFormat(Format); err != nil {
		return err
	}
	app, err := root.Container()
	if err != nil {
		return err
	}
	ledger := app.GetLedger()
	expenses, err := ledger.Expenses()
	if err != nil {
		return err
	}
	tasks, err := ledger.Tasks()
	if err != nil {
		return err
	}

	s := report.Summarize(expenses, tasks, app.Now(), app.GetConfig().Currency.Default)
	out, err := app.GetReportGenerator().GenerateReport(&s, Format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

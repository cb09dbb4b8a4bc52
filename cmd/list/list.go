// Package list implements the list command
package list

import (
	"fmt"
	"io"
	"text/tabwriter"

	"fjacquet/quicklog/cmd/root"
	"fjacquet/quicklog/internal/dateutils"
	"fjacquet/quicklog/internal/models"
	"fjacquet/quicklog/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:       "list [expenses|tasks|reminders|notes]",
	Short:     "List recorded expenses, tasks, reminders or notes",
	Long:      `List the records kept in the ledger. Without an argument every kind is listed.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"expenses", "tasks", "reminders", "notes"},
	RunE:      listFunc,
}

func listFunc(cmd *cobra.Command, args []string) error {
	kinds := models.RecordKinds
	if len(args) == 1 {
		kind, err := models.ParseKind(args[0])
		if err != nil || kind == models.KindUnknown {
			return fmt.Errorf("cannot list %q: want expenses, tasks, reminders or notes", args[0])
		}
		kinds = []models.Kind{kind}
	}

	app, err := root.Container()
	if err != nil {
		return err
	}
	return Write(cmd.OutOrStdout(), app.GetLedger(), kinds)
}

// Write prints the records of each kind as a table.
func Write(out io.Writer, ledger *store.Ledger, kinds []models.Kind) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for i, kind := range kinds {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := writeKind(w, ledger, kind); err != nil {
			return err
		}
	}
	return w.Flush()
}

func writeKind(w io.Writer, ledger *store.Ledger, kind models.Kind) error {
	switch kind {
	case models.KindExpense:
		expenses, err := ledger.Expenses()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "EXPENSES (%d)\n", len(expenses))
		for _, e := range expenses {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, dateutils.ToISODate(e.Date), e.Amount.Display(), e.Category, e.Description)
		}
	case models.KindTask:
		tasks, err := ledger.Tasks()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "TASKS (%d)\n", len(tasks))
		for _, t := range tasks {
			mark := "[ ]"
			if t.Completed {
				mark = "[x]"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, dateutils.ToISODate(t.Date), mark, t.Description)
		}
	case models.KindReminder:
		reminders, err := ledger.Reminders()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "REMINDERS (%d)\n", len(reminders))
		for _, r := range reminders {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, dateutils.FormatDate(r.Date, dateutils.DateLayoutDisplay), r.Description)
		}
	case models.KindNote:
		notes, err := ledger.Notes()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "NOTES (%d)\n", len(notes))
		for _, n := range notes {
			fmt.Fprintf(w, "%s\t%s\t%s\n", n.ID, dateutils.ToISODate(n.Date), n.Content)
		}
	}
	return nil
}

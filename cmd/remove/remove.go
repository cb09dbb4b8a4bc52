// Package remove implements the delete command
package remove

import (
	"fmt"

	"fjacquet/quicklog/cmd/common"
	"fjacquet/quicklog/cmd/root"
	"fjacquet/quicklog/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the delete command
var Cmd = &cobra.Command{
	Use:   "delete <expense|task|reminder|note> <id>",
	Short: "Delete a record from the ledger",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := models.ParseKind(args[0])
		if err != nil {
			return err
		}
		app, err := root.Container()
		if err != nil {
			return err
		}
		if err := app.GetLedger().Delete(kind, args[1]); err != nil {
			return common.WithListHint(err, kind)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", kind, args[1])
		return nil
	},
}

// Package done implements the done command
package done

import (
	"fmt"

	"fjacquet/quicklog/cmd/common"
	"fjacquet/quicklog/cmd/root"
	"fjacquet/quicklog/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the done command
var Cmd = &cobra.Command{
	Use:   "done <task-id>",
	Short: "Toggle a task between pending and completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := root.Container()
		if err != nil {
			return err
		}
		task, err := app.GetLedger().ToggleTask(args[0])
		if err != nil {
			return common.WithListHint(err, models.KindTask)
		}
		state := "pending"
		if task.Completed {
			state = "completed"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Task %q is now %s\n", task.Description, state)
		return nil
	},
}

// Package edit implements the edit command
package edit

import (
	"fmt"
	"strings"

	"fjacquet/quicklog/cmd/common"
	"fjacquet/quicklog/cmd/root"
	"fjacquet/quicklog/internal/apperror"
	"fjacquet/quicklog/internal/currencyutils"
	"fjacquet/quicklog/internal/logging"
	"fjacquet/quicklog/internal/models"

	"github.com/spf13/cobra"
)

// Flags of the edit command. Only the flags given on the command line are applied.
var (
	Amount      string
	Category    string
	Description string
)

// Cmd represents the edit command
var Cmd = &cobra.Command{
	Use:   "edit <expense-id>",
	Short: "Change the amount, category or description of an expense",
	Long: `Change a recorded expense. Only the fields passed as flags are changed; the
id and date stay as recorded. An amount may carry a £ or $ glyph to change its
currency, otherwise the expense keeps its currency.

Example:
  quicklog edit 3f2a... --amount 4.20 --category Food`,
	Args: cobra.ExactArgs(1),
	RunE: editFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Amount, "amount", "a", "", "New amount, e.g. 4.20 or £4.20")
	Cmd.Flags().StringVarP(&Category, "category", "c", "", "New category")
	Cmd.Flags().StringVarP(&Description, "description", "d", "", "New description")
}

func editFunc(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if !flags.Changed("amount") && !flags.Changed("category") && !flags.Changed("description") {
		return fmt.Errorf("nothing to change: use --amount, --category or --description")
	}

	app, err := root.Container()
	if err != nil {
		return err
	}
	ledger := app.GetLedger()

	expense, err := ledger.Expense(args[0])
	if err != nil {
		return common.WithListHint(err, models.KindExpense)
	}

	if flags.Changed("amount") {
		amount, err := ParseAmount(Amount, expense.Amount.Currency)
		if err != nil {
			return err
		}
		expense.Amount = amount
	}
	if flags.Changed("category") {
		category := strings.TrimSpace(Category)
		if category == "" {
			return &apperror.ValidationError{Field: "category", Reason: "must not be empty"}
		}
		expense.Category = category
	}
	if flags.Changed("description") {
		description := strings.TrimSpace(Description)
		if description == "" {
			return &apperror.ValidationError{Field: "description", Reason: "must not be empty"}
		}
		expense.Description = description
	}

	if err := ledger.UpdateExpense(expense); err != nil {
		return common.WithListHint(err, models.KindExpense)
	}
	app.GetLogger().Info("Expense edited", logging.Field{Key: logging.FieldRecordID, Value: expense.ID})

	fmt.Fprintf(cmd.OutOrStdout(), "Updated expense %s: %s for %s (%s)\n",
		expense.ID, expense.Amount.Display(), expense.Category, expense.Description)
	return nil
}

// ParseAmount reads a positive amount such as "4.20" or "£4.20". A leading
// glyph sets the currency; otherwise currency is kept.
func ParseAmount(text, currency string) (models.Money, error) {
	code, text := currencyutils.TrimGlyph(strings.TrimSpace(text))
	if code != "" {
		currency = code
	}

	amount, err := models.NewMoneyFromString(text, currency)
	if err != nil {
		return models.Money{}, &apperror.ValidationError{Field: "amount", Reason: err.Error()}
	}
	if cmp, err := amount.Compare(models.ZeroMoney(currency)); err != nil || cmp <= 0 {
		return models.Money{}, &apperror.ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	return amount, nil
}

// Package explain implements the explain command
package explain

import (
	"fmt"
	"strings"

	"fjacquet/quicklog/cmd/common"
	"fjacquet/quicklog/cmd/root"
	"fjacquet/quicklog/internal/intent"

	"github.com/spf13/cobra"
)

// Text is the message to explain.
var Text string

// Cmd represents the explain command
var Cmd = &cobra.Command{
	Use:   "explain [message]",
	Short: "Show the keywords and amount behind a classification",
	Long: `Classify a message and list every intent and category keyword found in it,
in the order the rules consult them, together with the amount that was read.

Example:
  quicklog explain -t "spent 12 on taxi"`,
	RunE: explainFunc,
}

func init() {
	Cmd.Flags().StringVarP(&Text, "text", "t", "", "Message to explain (defaults to the arguments)")
}

func explainFunc(cmd *cobra.Command, args []string) error {
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
	exp := app.GetParser().Explain(text, app.GetKeywordIndex())

	out := cmd.OutOrStdout()
	if err := common.WriteIntent(out, exp.Intent, app.GetConfig().Currency.Default); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nnormalized:  %q\n", exp.Normalized)
	if exp.Amount != "" {
		fmt.Fprintf(out, "amount read: %s", exp.Amount)
		if exp.BareAmount {
			fmt.Fprint(out, " (bare amount shape)")
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "rule order:  %s\n", kinds(intent.RuleOrder()))
	if len(exp.Hits) == 0 {
		fmt.Fprintln(out, "keywords:    none")
		return nil
	}
	fmt.Fprintln(out, "keywords:")
	for _, hit := range exp.Hits {
		if hit.Category != "" {
			fmt.Fprintf(out, "  %-14s %s (%s)\n", hit.Keyword, hit.Kind, hit.Category)
		} else {
			fmt.Fprintf(out, "  %-14s %s\n", hit.Keyword, hit.Kind)
		}
	}
	return nil
}

func kinds[T fmt.Stringer](items []T) string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.String()
	}
	return strings.Join(names, " > ")
}

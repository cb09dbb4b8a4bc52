// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/quicklog/internal/apperror"
	"fjacquet/quicklog/internal/dateutils"
	"fjacquet/quicklog/internal/models"

	"github.com/fatih/color"
)

var kindColors = map[models.Kind]*color.Color{
	models.KindExpense:  color.New(color.FgGreen),
	models.KindReminder: color.New(color.FgYellow),
	models.KindTask:     color.New(color.FgBlue),
	models.KindNote:     color.New(color.FgMagenta),
	models.KindUnknown:  color.New(color.FgRed),
}

// SetColor turns coloured output on or off for every command.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// Colorize paints text in the colour of kind.
func Colorize(kind models.Kind, text string) string {
	c, ok := kindColors[kind]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

// FormatIntent renders a classification as aligned "field: value" lines.
// Amounts without a glyph are shown in defaultCurrency.
func FormatIntent(p models.ParsedIntent, defaultCurrency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "kind:        %s\n", Colorize(p.Kind, p.Kind.String()))
	if amount, ok := p.Money(defaultCurrency); ok {
		fmt.Fprintf(&b, "amount:      %s\n", amount.Display())
	}
	if p.Category != "" {
		fmt.Fprintf(&b, "category:    %s\n", p.Category)
	}
	fmt.Fprintf(&b, "description: %s\n", p.Description)
	if p.Date != nil {
		fmt.Fprintf(&b, "date:        %s\n", dateutils.FormatDate(*p.Date, dateutils.DateLayoutDisplay))
	}
	return b.String()
}

// WriteIntent writes FormatIntent to w.
func WriteIntent(w io.Writer, p models.ParsedIntent, defaultCurrency string) error {
	_, err := io.WriteString(w, FormatIntent(p, defaultCurrency))
	return err
}

// WithListHint adds a pointer to the list command when err is a missing
// record, so the user can look up the right id.
func WithListHint(err error, kind models.Kind) error {
	if apperror.IsNotFound(err) {
		return fmt.Errorf("%w (run \"quicklog list %ss\" to see the ids)", err, kind)
	}
	return err
}

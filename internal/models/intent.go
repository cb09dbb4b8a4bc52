package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParsedIntent is the result of classifying one message. It is a plain value:
// the classifier never assigns identifiers or persists anything.
//
// Amount, Currency and Category are only set for KindExpense, and an expense
// always carries an Amount. Date is only set for KindReminder.
type ParsedIntent struct {
	Kind        Kind
	Amount      *decimal.Decimal
	Currency    string
	Category    string
	Description string
	Date        *time.Time
}

// HasAmount reports whether an amount was extracted.
func (p ParsedIntent) HasAmount() bool {
	return p.Amount != nil
}

// Money returns the amount in the currency matched with it, or in
// defaultCurrency when the message carried no currency glyph.
func (p ParsedIntent) Money(defaultCurrency string) (Money, bool) {
	if p.Amount == nil {
		return Money{}, false
	}
	currency := p.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	return NewMoney(*p.Amount, currency), true
}

// IntentRow is the CSV shape of one classified line.
type IntentRow struct {
	Line        int    `csv:"Line"`
	Input       string `csv:"Input"`
	Kind        string `csv:"Kind"`
	Amount      string `csv:"Amount"`
	Currency    string `csv:"Currency"`
	Category    string `csv:"Category"`
	Description string `csv:"Description"`
	Date        string `csv:"Date"`
}

// ToRow flattens the intent for CSV output. Amounts keep two decimals and
// dates use the ISO day layout.
func (p ParsedIntent) ToRow(line int, input string) IntentRow {
	row := IntentRow{
		Line:        line,
		Input:       input,
		Kind:        p.Kind.String(),
		Currency:    p.Currency,
		Category:    p.Category,
		Description: p.Description,
	}
	if p.Amount != nil {
		row.Amount = p.Amount.StringFixed(2)
	}
	if p.Date != nil {
		row.Date = p.Date.Format("2006-01-02")
	}
	return row
}

// MessageRow is one input message read from a CSV file with a "text" column.
type MessageRow struct {
	Text string `csv:"text"`
}

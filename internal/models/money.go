package models

import (
	"fmt"

	"fjacquet/quicklog/internal/currencyutils"

	"github.com/shopspring/decimal"
)

// Money is an exact amount in an ISO-4217 currency.
type Money struct {
	Amount   decimal.Decimal `yaml:"amount"`
	Currency string          `yaml:"currency"`
}

// NewMoney creates a Money value.
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// NewMoneyFromString parses a decimal amount such as "3.50".
func NewMoneyFromString(amount, currency string) (Money, error) {
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string '%s': %w", amount, err)
	}
	return NewMoney(dec, currency), nil
}

// ZeroMoney returns a zero amount in currency.
func ZeroMoney(currency string) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// Add sums two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("cannot add different currencies: %s and %s", m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Compare returns -1, 0 or 1. Different currencies cannot be compared.
func (m Money) Compare(other Money) (int, error) {
	if m.Currency != other.Currency {
		return 0, fmt.Errorf("cannot compare different currencies: %s and %s", m.Currency, other.Currency)
	}
	return m.Amount.Cmp(other.Amount), nil
}

// Equal reports whether amount and currency both match.
func (m Money) Equal(other Money) bool {
	return m.Amount.Equal(other.Amount) && m.Currency == other.Currency
}

// String renders "3.50 GBP".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
}

// Display renders the amount the way a person writes it, e.g. "£3.50" or "$1,200.00".
// Unknown currency codes render as "4.20 XYZ".
func (m Money) Display() string {
	return currencyutils.FormatAmount(m.Amount, m.Currency)
}

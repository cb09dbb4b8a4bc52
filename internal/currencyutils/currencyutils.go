// Package currencyutils maps currency glyphs to ISO-4217 codes and renders amounts.
package currencyutils

import (
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Glyphs recognised in front of an amount, and the currency each implies.
var glyphCurrencies = map[string]string{
	"£": gomoney.GBP,
	"$": gomoney.USD,
}

// CurrencyForGlyph returns the ISO code for a currency glyph, or "" if the glyph is unknown.
func CurrencyForGlyph(glyph string) string {
	return glyphCurrencies[glyph]
}

// TrimGlyph splits a leading currency glyph off text and returns its ISO code
// with the rest of the text. The code is "" when text has no leading glyph.
func TrimGlyph(text string) (string, string) {
	for glyph, code := range glyphCurrencies {
		if rest, ok := strings.CutPrefix(text, glyph); ok {
			return code, rest
		}
	}
	return "", text
}

// ContainsGlyph reports whether text contains any recognised currency glyph.
func ContainsGlyph(text string) bool {
	for glyph := range glyphCurrencies {
		if strings.Contains(text, glyph) {
			return true
		}
	}
	return false
}

// IsKnownCurrency reports whether code is an ISO-4217 code known to go-money.
func IsKnownCurrency(code string) bool {
	return gomoney.GetCurrency(strings.ToUpper(code)) != nil
}

// FormatAmount renders an amount with its currency symbol and grouping, e.g. "£1,234.50".
// Amounts in an unknown currency are rendered as "1234.50 XYZ".
func FormatAmount(amount decimal.Decimal, currency string) string {
	c := gomoney.GetCurrency(strings.ToUpper(currency))
	if c == nil {
		formatted := amount.StringFixed(2)
		if currency == "" {
			return formatted
		}
		return formatted + " " + currency
	}
	minor := amount.Shift(int32(c.Fraction)).Round(0).IntPart()
	return gomoney.New(minor, c.Code).Display()
}

package intent

import (
	"regexp"

	"fjacquet/quicklog/internal/currencyutils"

	"github.com/shopspring/decimal"
)

// An optional £ or $, digits, and optionally exactly two decimals. "3.5" reads as 3.
var amountPattern = regexp.MustCompile(`([£$])?(\d+(?:\.\d{2})?)`)

// Bare amounts next to a word, such as "12 lunch" or "lunch 12".
var (
	amountThenWord = regexp.MustCompile(`^\d+(\.\d{2})?\s*\w+`)
	wordThenAmount = regexp.MustCompile(`\w+\s*\d+(\.\d{2})?$`)
)

type amountMatch struct {
	text     string
	value    decimal.Decimal
	currency string
}

// extractAmount returns the first number in text, or nil. Later numbers are ignored.
func extractAmount(text string) *amountMatch {
	groups := amountPattern.FindStringSubmatch(text)
	if groups == nil {
		return nil
	}
	value, err := decimal.NewFromString(groups[2])
	if err != nil {
		return nil
	}
	return &amountMatch{
		text:     groups[0],
		value:    value,
		currency: currencyutils.CurrencyForGlyph(groups[1]),
	}
}

// usable reports whether the amount can back an expense; a zero amount cannot.
func (a *amountMatch) usable() bool {
	return a != nil && !a.value.IsZero()
}

func looksLikeBareAmount(original string) bool {
	return amountThenWord.MatchString(original) || wordThenAmount.MatchString(original)
}

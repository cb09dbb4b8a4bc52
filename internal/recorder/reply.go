package recorder

import (
	"fmt"

	"fjacquet/quicklog/internal/models"
)

// Greeting is the first line the chat prints.
const Greeting = "Hi! I'm your expense tracker assistant. Try typing something like 'Coffee £3.50' or 'Remind me to pay rent tomorrow'!"

// NotUnderstood is the answer to a message of kind Unknown.
const NotUnderstood = "I didn't quite understand that. Try something like 'Lunch £12' or 'Remind me to call John tomorrow'."

// Reply renders the assistant's answer, e.g. "✅ Logged expense: £3.50 for Food".
// Amounts typed without a glyph are shown in pounds.
func Reply(p models.ParsedIntent) string {
	return ReplyIn(p, models.DefaultCurrency)
}

// ReplyIn is Reply with a different currency for amounts typed without a glyph.
func ReplyIn(p models.ParsedIntent, defaultCurrency string) string {
	switch p.Kind {
	case models.KindExpense:
		amount, ok := p.Money(defaultCurrency)
		if !ok {
			return NotUnderstood
		}
		return fmt.Sprintf("✅ Logged expense: %s for %s", amount.Display(), categoryOrGeneral(p.Category))
	case models.KindReminder:
		return "⏰ Reminder set: " + p.Description
	case models.KindTask:
		return "📝 Task added: " + p.Description
	case models.KindNote:
		return "📄 Note saved: " + p.Description
	default:
		return NotUnderstood
	}
}

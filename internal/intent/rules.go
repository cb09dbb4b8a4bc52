package intent

import (
	"fjacquet/quicklog/internal/currencyutils"
	"fjacquet/quicklog/internal/models"
)

// rule pairs a predicate with the builder used when it holds.
type rule struct {
	name    models.Kind
	matches func(p *Parser, m message) bool
	build   func(p *Parser, m message) models.ParsedIntent
}

// cascade is evaluated top to bottom and the first match wins. The order is
// part of the behaviour: "Remind me to pay rent tomorrow" has an expense
// keyword but must stay a reminder, and a number makes "add 2 coffees" an
// expense rather than a task.
var cascade = []rule{
	{name: models.KindReminder, matches: isReminder, build: buildReminder},
	{name: models.KindExpense, matches: isExpense, build: buildExpense},
	{name: models.KindTask, matches: isTask, build: buildTask},
	{name: models.KindNote, matches: isNote, build: buildNote},
	{name: models.KindUnknown, matches: always, build: buildUnknown},
}

// RuleOrder returns the kinds in the order the cascade tries them.
func RuleOrder() []models.Kind {
	order := make([]models.Kind, len(cascade))
	for i, r := range cascade {
		order[i] = r.name
	}
	return order
}

func isReminder(_ *Parser, m message) bool {
	return containsAny(m.normalized, reminderKeywords)
}

// isExpense needs a non-zero amount plus one piece of supporting evidence.
func isExpense(p *Parser, m message) bool {
	if !m.amount.usable() {
		return false
	}
	return currencyutils.ContainsGlyph(m.normalized) ||
		containsAny(m.normalized, spendVerbs) ||
		p.hasCategoryKeyword(m.normalized) ||
		looksLikeBareAmount(m.original)
}

func isTask(_ *Parser, m message) bool {
	return containsAny(m.normalized, taskKeywords)
}

func isNote(_ *Parser, m message) bool {
	return containsAny(m.normalized, noteKeywords)
}

func always(*Parser, message) bool {
	return true
}

func buildReminder(p *Parser, m message) models.ParsedIntent {
	date := resolveDate(m.normalized, p.now())
	return models.ParsedIntent{
		Kind:        models.KindReminder,
		Description: stripPhrases(m.original, reminderPhrases),
		Date:        &date,
	}
}

func buildExpense(p *Parser, m message) models.ParsedIntent {
	amount := m.amount.value
	return models.ParsedIntent{
		Kind:        models.KindExpense,
		Amount:      &amount,
		Currency:    m.amount.currency,
		Category:    p.categoryFor(m.normalized),
		Description: m.original,
	}
}

func buildTask(_ *Parser, m message) models.ParsedIntent {
	return models.ParsedIntent{
		Kind:        models.KindTask,
		Description: stripPhrases(m.original, taskPhrases),
	}
}

func buildNote(_ *Parser, m message) models.ParsedIntent {
	return models.ParsedIntent{
		Kind:        models.KindNote,
		Description: stripPhrases(m.original, notePhrases),
	}
}

func buildUnknown(_ *Parser, m message) models.ParsedIntent {
	return unknownIntent(m)
}

func unknownIntent(m message) models.ParsedIntent {
	return models.ParsedIntent{
		Kind:        models.KindUnknown,
		Description: m.original,
	}
}

// Package intent turns one free-form message into a models.ParsedIntent.
//
// Classification is an ordered cascade of rules (see cascade in rules.go): the
// first rule whose predicate holds builds the result. The Parser holds no
// mutable state, so a single instance may be shared between goroutines.
package intent

import (
	"strings"
	"time"

	"fjacquet/quicklog/internal/logging"
	"fjacquet/quicklog/internal/models"
)

// Parser classifies messages against a category table.
type Parser struct {
	categories []models.CategoryConfig
	now        func() time.Time
	logger     logging.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock sets the source of "now" used to date reminders.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLogger makes the parser log, at debug level, which rule fired.
func WithLogger(logger logging.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithCategories replaces the built-in category table. Order is significant:
// the first category with a keyword hit wins. An empty table is ignored.
func WithCategories(categories []models.CategoryConfig) Option {
	return func(p *Parser) {
		if normalized := normalizeCategories(categories); len(normalized) > 0 {
			p.categories = normalized
		}
	}
}

// NewParser creates a Parser using the built-in category table and the wall clock.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		categories: DefaultCategories(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Classify classifies text with the default parser.
func Classify(text string) models.ParsedIntent {
	return defaultParser.Classify(text)
}

// Classify returns the intent of text. It is total: any string, including the
// empty one, yields a result, and unrecognised input yields KindUnknown.
func (p *Parser) Classify(text string) models.ParsedIntent {
	msg := p.normalize(text)
	for _, rule := range cascade {
		if !rule.matches(p, msg) {
			continue
		}
		result := rule.build(p, msg)
		if p.logger != nil {
			p.logger.Debug("Message classified",
				logging.Field{Key: logging.FieldRule, Value: rule.name},
				logging.Field{Key: logging.FieldKind, Value: result.Kind},
				logging.Field{Key: logging.FieldCategory, Value: result.Category})
		}
		return result
	}
	// The cascade ends with a rule that always matches.
	return unknownIntent(msg)
}

// Categories returns a copy of the category table in lookup order.
func (p *Parser) Categories() []models.CategoryConfig {
	return cloneCategories(p.categories)
}

// message is one input seen two ways: original keeps the user's casing for
// descriptions and amounts, normalized is only used for keyword matching.
type message struct {
	original   string
	normalized string
	amount     *amountMatch
}

func (p *Parser) normalize(text string) message {
	original := strings.TrimSpace(text)
	return message{
		original:   original,
		normalized: strings.ToLower(original),
		amount:     extractAmount(original),
	}
}

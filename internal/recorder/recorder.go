// Package recorder turns a confirmed ParsedIntent into a stored record.
package recorder

import (
	"fmt"
	"time"

	"fjacquet/quicklog/internal/apperror"
	"fjacquet/quicklog/internal/logging"
	"fjacquet/quicklog/internal/models"

	"github.com/google/uuid"
)

// Sink receives confirmed records, one method per kind.
type Sink interface {
	RecordExpense(models.Expense) error
	RecordTask(models.Task) error
	RecordReminder(models.Reminder) error
	RecordNote(models.Note) error
}

// Recorder assigns identifiers and timestamps and forwards records to a Sink.
type Recorder struct {
	sink            Sink
	now             func() time.Time
	newID           func() string
	defaultCurrency string
	logger          logging.Logger
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock sets the timestamp source for expenses, tasks and notes.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		if now != nil {
			r.now = now
		}
	}
}

// WithIDGenerator replaces the uuid generator.
func WithIDGenerator(newID func() string) Option {
	return func(r *Recorder) {
		if newID != nil {
			r.newID = newID
		}
	}
}

// WithDefaultCurrency sets the currency of amounts typed without a glyph.
func WithDefaultCurrency(code string) Option {
	return func(r *Recorder) {
		if code != "" {
			r.defaultCurrency = code
		}
	}
}

func WithLogger(logger logging.Logger) Option {
	return func(r *Recorder) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Recorder writing to sink.
func New(sink Sink, opts ...Option) *Recorder {
	r := &Recorder{
		sink:            sink,
		now:             time.Now,
		newID:           uuid.NewString,
		defaultCurrency: models.DefaultCurrency,
		logger:          logging.GetLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultCurrency returns the currency used for amounts without a glyph.
func (r *Recorder) DefaultCurrency() string {
	return r.defaultCurrency
}

// Record stores the intent and returns the identifier it was given.
// Unknown intents are rejected with apperror.ErrUnknownKind.
func (r *Recorder) Record(p models.ParsedIntent) (string, error) {
	id := r.newID()
	now := r.now()

	var err error
	switch p.Kind {
	case models.KindExpense:
		amount, ok := p.Money(r.defaultCurrency)
		if !ok {
			return "", &apperror.ValidationError{Field: "amount", Reason: "an expense needs an amount"}
		}
		err = r.sink.RecordExpense(models.Expense{
			ID:          id,
			Amount:      amount,
			Category:    categoryOrGeneral(p.Category),
			Description: p.Description,
			Date:        now,
		})
	case models.KindReminder:
		date := now
		if p.Date != nil {
			date = *p.Date
		}
		err = r.sink.RecordReminder(models.Reminder{ID: id, Description: p.Description, Date: date})
	case models.KindTask:
		err = r.sink.RecordTask(models.Task{ID: id, Description: p.Description, Date: now})
	case models.KindNote:
		err = r.sink.RecordNote(models.Note{ID: id, Content: p.Description, Date: now})
	default:
		return "", fmt.Errorf("cannot record %q: %w", p.Description, apperror.ErrUnknownKind)
	}
	if err != nil {
		r.logger.WithError(err).Error("Failed to record message",
			logging.Field{Key: logging.FieldKind, Value: p.Kind})
		return "", fmt.Errorf("failed to record %s: %w", p.Kind, err)
	}

	r.logger.Info("Recorded message",
		logging.Field{Key: logging.FieldKind, Value: p.Kind},
		logging.Field{Key: logging.FieldRecordID, Value: id})
	return id, nil
}

// Reply renders the assistant's answer to a message using the recorder's default currency.
func (r *Recorder) Reply(p models.ParsedIntent) string {
	return ReplyIn(p, r.defaultCurrency)
}

func categoryOrGeneral(category string) string {
	if category == "" {
		return models.CategoryGeneral
	}
	return category
}

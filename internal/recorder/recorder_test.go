package recorder

import (
	"errors"
	"testing"
	"time"

	"fjacquet/quicklog/internal/apperror"
	"fjacquet/quicklog/internal/logging"
	"fjacquet/quicklog/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	expenses  []models.Expense
	tasks     []models.Task
	reminders []models.Reminder
	notes     []models.Note
	err       error
}

func (f *fakeSink) RecordExpense(e models.Expense) error {
	f.expenses = append(f.expenses, e)
	return f.err
}

func (f *fakeSink) RecordTask(t models.Task) error {
	f.tasks = append(f.tasks, t)
	return f.err
}

func (f *fakeSink) RecordReminder(r models.Reminder) error {
	f.reminders = append(f.reminders, r)
	return f.err
}

func (f *fakeSink) RecordNote(n models.Note) error {
	f.notes = append(f.notes, n)
	return f.err
}

var now = time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

func newTestRecorder(sink Sink, opts ...Option) *Recorder {
	base := []Option{
		WithClock(func() time.Time { return now }),
		WithIDGenerator(func() string { return "id-1" }),
		WithLogger(logging.NewMockLogger()),
	}
	return New(sink, append(base, opts...)...)
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestRecord_Expense(t *testing.T) {
	sink := &fakeSink{}
	r := newTestRecorder(sink)

	id, err := r.Record(models.ParsedIntent{
		Kind:        models.KindExpense,
		Amount:      amount("3.50"),
		Currency:    "GBP",
		Category:    models.CategoryFood,
		Description: "Coffee £3.50",
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", id)

	require.Len(t, sink.expenses, 1)
	e := sink.expenses[0]
	assert.Equal(t, "id-1", e.ID)
	assert.True(t, e.Amount.Equal(models.NewMoney(decimal.RequireFromString("3.5"), "GBP")))
	assert.Equal(t, models.CategoryFood, e.Category)
	assert.Equal(t, "Coffee £3.50", e.Description)
	assert.Equal(t, now, e.Date)
}

func TestRecord_ExpenseDefaults(t *testing.T) {
	sink := &fakeSink{}
	r := newTestRecorder(sink, WithDefaultCurrency("EUR"))

	_, err := r.Record(models.ParsedIntent{Kind: models.KindExpense, Amount: amount("12"), Description: "spent 12"})
	require.NoError(t, err)
	assert.Equal(t, "EUR", sink.expenses[0].Amount.Currency)
	assert.Equal(t, models.CategoryGeneral, sink.expenses[0].Category)
	assert.Equal(t, "EUR", r.DefaultCurrency())
}

func TestRecord_ExpenseWithoutAmount(t *testing.T) {
	sink := &fakeSink{}
	_, err := newTestRecorder(sink).Record(models.ParsedIntent{Kind: models.KindExpense})

	var ve *apperror.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "amount", ve.Field)
	assert.Empty(t, sink.expenses)
}

func TestRecord_Reminder(t *testing.T) {
	sink := &fakeSink{}
	r := newTestRecorder(sink)
	tomorrow := now.AddDate(0, 0, 1)

	_, err := r.Record(models.ParsedIntent{Kind: models.KindReminder, Description: "pay rent tomorrow", Date: &tomorrow})
	require.NoError(t, err)
	assert.Equal(t, []models.Reminder{{ID: "id-1", Description: "pay rent tomorrow", Date: tomorrow}}, sink.reminders)

	_, err = r.Record(models.ParsedIntent{Kind: models.KindReminder, Description: "undated"})
	require.NoError(t, err)
	assert.Equal(t, now, sink.reminders[1].Date)
}

func TestRecord_TaskAndNote(t *testing.T) {
	sink := &fakeSink{}
	r := newTestRecorder(sink)

	_, err := r.Record(models.ParsedIntent{Kind: models.KindTask, Description: "call dentist"})
	require.NoError(t, err)
	_, err = r.Record(models.ParsedIntent{Kind: models.KindNote, Description: "Check receipts"})
	require.NoError(t, err)

	assert.Equal(t, []models.Task{{ID: "id-1", Description: "call dentist", Date: now}}, sink.tasks)
	assert.Equal(t, []models.Note{{ID: "id-1", Content: "Check receipts", Date: now}}, sink.notes)
}

func TestRecord_Unknown(t *testing.T) {
	sink := &fakeSink{}
	_, err := newTestRecorder(sink).Record(models.ParsedIntent{Kind: models.KindUnknown, Description: "asdf"})
	assert.True(t, errors.Is(err, apperror.ErrUnknownKind))
}

func TestRecord_SinkError(t *testing.T) {
	logger := logging.NewMockLogger()
	sink := &fakeSink{err: errors.New("disk full")}

	_, err := newTestRecorder(sink, WithLogger(logger)).Record(models.ParsedIntent{Kind: models.KindTask, Description: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.True(t, logger.HasEntry("ERROR", "Failed to record message"))
}

func TestRecord_DefaultIDsAreUUIDs(t *testing.T) {
	sink := &fakeSink{}
	r := New(sink, WithLogger(logging.NewMockLogger()))

	id, err := r.Record(models.ParsedIntent{Kind: models.KindNote, Description: "x"})
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
}

func TestReply(t *testing.T) {
	tests := []struct {
		name     string
		intent   models.ParsedIntent
		expected string
	}{
		{"expense", models.ParsedIntent{Kind: models.KindExpense, Amount: amount("3.5"), Currency: "GBP", Category: models.CategoryFood}, "✅ Logged expense: £3.50 for Food"},
		{"expense without glyph", models.ParsedIntent{Kind: models.KindExpense, Amount: amount("12"), Category: models.CategoryTransport}, "✅ Logged expense: £12.00 for Transport"},
		{"expense in dollars", models.ParsedIntent{Kind: models.KindExpense, Amount: amount("20"), Currency: "USD", Category: models.CategoryShopping}, "✅ Logged expense: $20.00 for Shopping"},
		{"expense without category", models.ParsedIntent{Kind: models.KindExpense, Amount: amount("1")}, "✅ Logged expense: £1.00 for General"},
		{"reminder", models.ParsedIntent{Kind: models.KindReminder, Description: "pay rent tomorrow"}, "⏰ Reminder set: pay rent tomorrow"},
		{"task", models.ParsedIntent{Kind: models.KindTask, Description: "call dentist"}, "📝 Task added: call dentist"},
		{"note", models.ParsedIntent{Kind: models.KindNote, Description: "Check receipts"}, "📄 Note saved: Check receipts"},
		{"unknown", models.ParsedIntent{Kind: models.KindUnknown, Description: "asdf qwerty"}, NotUnderstood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Reply(tt.intent))
		})
	}
}

func TestRecorderReply_UsesDefaultCurrency(t *testing.T) {
	r := newTestRecorder(&fakeSink{}, WithDefaultCurrency("USD"))
	got := r.Reply(models.ParsedIntent{Kind: models.KindExpense, Amount: amount("5"), Category: models.CategoryFood})
	assert.Equal(t, "✅ Logged expense: $5.00 for Food", got)
}

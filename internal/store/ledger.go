package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fjacquet/quicklog/internal/apperror"
	"fjacquet/quicklog/internal/fileutils"
	"fjacquet/quicklog/internal/logging"
	"fjacquet/quicklog/internal/models"
	"fjacquet/quicklog/internal/validation"

	"gopkg.in/yaml.v3"
)

// ledgerFile is the on-disk layout of the ledger.
type ledgerFile struct {
	Expenses  []models.Expense  `yaml:"expenses"`
	Tasks     []models.Task     `yaml:"tasks"`
	Reminders []models.Reminder `yaml:"reminders"`
	Notes     []models.Note     `yaml:"notes"`
}

// Ledger keeps confirmed records in a single YAML file. The file is read on
// first use and rewritten in full after every change. Safe for concurrent use.
type Ledger struct {
	path   string
	logger logging.Logger

	mu     sync.Mutex
	loaded bool
	data   ledgerFile
}

// NewLedger returns a ledger stored at path. Nothing is read until first use.
func NewLedger(path string, logger logging.Logger) *Ledger {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Ledger{path: path, logger: logger}
}

// Path returns the ledger file location.
func (l *Ledger) Path() string {
	return l.path
}

func (l *Ledger) load() error {
	if l.loaded {
		return nil
	}
	data, err := os.ReadFile(l.path) // #nosec G304 -- path comes from configuration
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			l.loaded = true
			return nil
		}
		return &apperror.StoreError{Op: "read", Path: l.path, Err: err}
	}
	if info, err := os.Stat(l.path); err == nil {
		if err := validation.IsValidFilePermissions(info.Mode().Perm()); err != nil {
			l.logger.WithError(err).Warn("Ledger file is readable by other users",
				logging.Field{Key: logging.FieldLedgerFile, Value: l.path})
		}
	}
	var file ledgerFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return &apperror.StoreError{Op: "parse", Path: l.path, Err: err}
	}
	l.data = file
	l.loaded = true
	return nil
}

func (l *Ledger) save() error {
	if err := fileutils.EnsureParentExists(l.path); err != nil {
		return &apperror.StoreError{Op: "mkdir", Path: filepath.Dir(l.path), Err: err}
	}
	data, err := yaml.Marshal(&l.data)
	if err != nil {
		return &apperror.StoreError{Op: "encode", Path: l.path, Err: err}
	}
	if err := os.WriteFile(l.path, data, models.PermissionLedgerFile); err != nil {
		return &apperror.StoreError{Op: "write", Path: l.path, Err: err}
	}
	return nil
}

// mutate loads the ledger, applies fn and saves. A failed save leaves the
// in-memory copy unloaded so the next call rereads the file.
func (l *Ledger) mutate(op string, fn func(*ledgerFile) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.load(); err != nil {
		return err
	}
	if err := fn(&l.data); err != nil {
		return err
	}
	if err := l.save(); err != nil {
		l.loaded = false
		l.data = ledgerFile{}
		return err
	}
	l.logger.Debug("Ledger updated",
		logging.Field{Key: logging.FieldOperation, Value: op},
		logging.Field{Key: logging.FieldLedgerFile, Value: l.path})
	return nil
}

func (l *Ledger) read(fn func(*ledgerFile)) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.load(); err != nil {
		return err
	}
	fn(&l.data)
	return nil
}

func (l *Ledger) RecordExpense(e models.Expense) error {
	return l.mutate("record_expense", func(f *ledgerFile) error {
		f.Expenses = append(f.Expenses, e)
		return nil
	})
}

func (l *Ledger) RecordTask(t models.Task) error {
	return l.mutate("record_task", func(f *ledgerFile) error {
		f.Tasks = append(f.Tasks, t)
		return nil
	})
}

func (l *Ledger) RecordReminder(r models.Reminder) error {
	return l.mutate("record_reminder", func(f *ledgerFile) error {
		f.Reminders = append(f.Reminders, r)
		return nil
	})
}

func (l *Ledger) RecordNote(n models.Note) error {
	return l.mutate("record_note", func(f *ledgerFile) error {
		f.Notes = append(f.Notes, n)
		return nil
	})
}

// Expenses returns the recorded expenses, oldest first.
func (l *Ledger) Expenses() ([]models.Expense, error) {
	var out []models.Expense
	err := l.read(func(f *ledgerFile) {
		out = append(out, f.Expenses...)
	})
	return out, err
}

// Expense returns the expense with the given id.
func (l *Ledger) Expense(id string) (models.Expense, error) {
	var (
		found models.Expense
		ok    bool
	)
	err := l.read(func(f *ledgerFile) {
		for _, e := range f.Expenses {
			if e.ID == id {
				found, ok = e, true
				return
			}
		}
	})
	if err != nil {
		return models.Expense{}, err
	}
	if !ok {
		return models.Expense{}, &apperror.NotFoundError{Kind: models.KindExpense.String(), ID: id}
	}
	return found, nil
}

// Tasks returns the recorded tasks, oldest first.
func (l *Ledger) Tasks() ([]models.Task, error) {
	var out []models.Task
	err := l.read(func(f *ledgerFile) {
		out = append(out, f.Tasks...)
	})
	return out, err
}

// Reminders returns the recorded reminders in insertion order.
func (l *Ledger) Reminders() ([]models.Reminder, error) {
	var out []models.Reminder
	err := l.read(func(f *ledgerFile) {
		out = append(out, f.Reminders...)
	})
	return out, err
}

// Notes returns the recorded notes, oldest first.
func (l *Ledger) Notes() ([]models.Note, error) {
	var out []models.Note
	err := l.read(func(f *ledgerFile) {
		out = append(out, f.Notes...)
	})
	return out, err
}

// ToggleTask flips the completed flag of a task and returns the updated task.
func (l *Ledger) ToggleTask(id string) (models.Task, error) {
	var updated models.Task
	err := l.mutate("toggle_task", func(f *ledgerFile) error {
		for i := range f.Tasks {
			if f.Tasks[i].ID == id {
				f.Tasks[i].Completed = !f.Tasks[i].Completed
				updated = f.Tasks[i]
				return nil
			}
		}
		return &apperror.NotFoundError{Kind: models.KindTask.String(), ID: id}
	})
	return updated, err
}

// UpdateExpense replaces the stored expense that has the same ID.
func (l *Ledger) UpdateExpense(e models.Expense) error {
	return l.mutate("update_expense", func(f *ledgerFile) error {
		for i := range f.Expenses {
			if f.Expenses[i].ID == e.ID {
				f.Expenses[i] = e
				return nil
			}
		}
		return &apperror.NotFoundError{Kind: models.KindExpense.String(), ID: e.ID}
	})
}

// Delete removes the record of the given kind with the given id.
func (l *Ledger) Delete(kind models.Kind, id string) error {
	return l.mutate("delete_"+kind.String(), func(f *ledgerFile) error {
		var removed bool
		switch kind {
		case models.KindExpense:
			f.Expenses, removed = removeByID(f.Expenses, id, func(e models.Expense) string { return e.ID })
		case models.KindTask:
			f.Tasks, removed = removeByID(f.Tasks, id, func(t models.Task) string { return t.ID })
		case models.KindReminder:
			f.Reminders, removed = removeByID(f.Reminders, id, func(r models.Reminder) string { return r.ID })
		case models.KindNote:
			f.Notes, removed = removeByID(f.Notes, id, func(n models.Note) string { return n.ID })
		default:
			return fmt.Errorf("cannot delete %s: %w", kind, apperror.ErrUnknownKind)
		}
		if !removed {
			return &apperror.NotFoundError{Kind: kind.String(), ID: id}
		}
		return nil
	})
}

func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	for i, item := range items {
		if idOf(item) == id {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}

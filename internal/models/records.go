package models

import "time"

// Expense is a confirmed spending record.
type Expense struct {
	ID          string    `yaml:"id"`
	Amount      Money     `yaml:"amount"`
	Category    string    `yaml:"category"`
	Description string    `yaml:"description"`
	Date        time.Time `yaml:"date"`
}

// Task is a to-do item; Completed is toggled from the task list.
type Task struct {
	ID          string    `yaml:"id"`
	Description string    `yaml:"description"`
	Completed   bool      `yaml:"completed"`
	Date        time.Time `yaml:"date"`
}

// Reminder carries the date resolved from the message ("tomorrow", "next week").
type Reminder struct {
	ID          string    `yaml:"id"`
	Description string    `yaml:"description"`
	Date        time.Time `yaml:"date"`
}

// Note is free text the user asked to keep.
type Note struct {
	ID      string    `yaml:"id"`
	Content string    `yaml:"content"`
	Date    time.Time `yaml:"date"`
}

// ExpenseRow is the CSV shape of an expense.
type ExpenseRow struct {
	ID          string `csv:"ID"`
	Date        string `csv:"Date"`
	Amount      string `csv:"Amount"`
	Currency    string `csv:"Currency"`
	Category    string `csv:"Category"`
	Description string `csv:"Description"`
}

// ToRow flattens the expense for CSV export.
func (e Expense) ToRow() ExpenseRow {
	return ExpenseRow{
		ID:          e.ID,
		Date:        e.Date.Format("2006-01-02"),
		Amount:      e.Amount.Amount.StringFixed(2),
		Currency:    e.Amount.Currency,
		Category:    e.Category,
		Description: e.Description,
	}
}

// Package report computes the expense summary and renders it as text, JSON or YAML.
package report

import (
	"sort"
	"time"

	"fjacquet/quicklog/internal/dateutils"
	"fjacquet/quicklog/internal/models"
)

// Limits of the summary lists.
const (
	TopCategoryCount   = 5
	RecentExpenseCount = 5
	WeekDays           = 7
)

// CategoryTotal is the amount spent in one category.
type CategoryTotal struct {
	Category string
	Total    models.Money
}

// Summary is the overview of the ledger at a reference time. Totals only
// include expenses in Currency; the others are counted in OtherCurrency.
type Summary struct {
	GeneratedAt    time.Time
	Currency       string
	Today          models.Money
	Week           models.Money
	TopCategories  []CategoryTotal
	Recent         []models.Expense
	PendingTasks   []models.Task
	CompletedTasks []models.Task
	OtherCurrency  int
}

// Summarize builds a Summary. "Today" is the calendar day of now; the week
// covers expenses dated on or after now minus seven days.
func Summarize(expenses []models.Expense, tasks []models.Task, now time.Time, currency string) Summary {
	s := Summary{
		GeneratedAt: now,
		Currency:    currency,
		Today:       models.ZeroMoney(currency),
		Week:        models.ZeroMoney(currency),
	}
	weekAgo := dateutils.AddDays(now, -WeekDays)

	totals := make(map[string]models.Money)
	var order []string
	for _, e := range expenses {
		if e.Amount.Currency != currency {
			s.OtherCurrency++
			continue
		}
		if dateutils.SameDay(now, e.Date) {
			s.Today, _ = s.Today.Add(e.Amount)
		}
		if !e.Date.Before(weekAgo) {
			s.Week, _ = s.Week.Add(e.Amount)
		}
		total, seen := totals[e.Category]
		if !seen {
			total = models.ZeroMoney(currency)
			order = append(order, e.Category)
		}
		totals[e.Category], _ = total.Add(e.Amount)
	}

	for _, category := range order {
		s.TopCategories = append(s.TopCategories, CategoryTotal{Category: category, Total: totals[category]})
	}
	sort.SliceStable(s.TopCategories, func(i, j int) bool {
		return s.TopCategories[i].Total.Amount.GreaterThan(s.TopCategories[j].Total.Amount)
	})
	if len(s.TopCategories) > TopCategoryCount {
		s.TopCategories = s.TopCategories[:TopCategoryCount]
	}

	s.Recent = append([]models.Expense(nil), expenses...)
	sort.SliceStable(s.Recent, func(i, j int) bool {
		return s.Recent[i].Date.After(s.Recent[j].Date)
	})
	if len(s.Recent) > RecentExpenseCount {
		s.Recent = s.Recent[:RecentExpenseCount]
	}

	s.PendingTasks, s.CompletedTasks = SplitTasks(tasks)
	return s
}

// SplitTasks separates pending from completed tasks, keeping their order.
func SplitTasks(tasks []models.Task) (pending, completed []models.Task) {
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}
	return pending, completed
}

// Package analytics implements the derived-statistics engine. Every
// function is pure: it reads an immutable snapshot of the ledger and
// recomputes its result fully on each call. No aggregate is cached.
package analytics

import (
	"time"

	"github.com/cosmic-tools/cosmic-ledger/internal/model"
)

// Snapshot is an immutable copy of the record store's state. The engine
// never mutates it.
type Snapshot struct {
	Currency   string
	Expenses   []model.Expense
	Categories []model.Category
	Budget     float64
}

// TotalExpenses returns the grand total: the sum of every expense amount
// in the snapshot. It is the percentage denominator for all breakdowns.
func (s Snapshot) TotalExpenses() float64 {
	var total float64
	for _, e := range s.Expenses {
		total += e.Amount
	}
	return total
}

// Count returns the number of recorded expenses.
func (s Snapshot) Count() int {
	return len(s.Expenses)
}

// AverageExpense returns the mean expense amount, or 0 for an empty
// snapshot.
func (s Snapshot) AverageExpense() float64 {
	if len(s.Expenses) == 0 {
		return 0
	}
	return s.TotalExpenses() / float64(len(s.Expenses))
}

// WeekTotal sums the expenses dated within the rolling 7-day window
// ending at now. The window is not calendar-week-aligned.
func (s Snapshot) WeekTotal(now time.Time) float64 {
	cutoff := now.AddDate(0, 0, -7)

	var total float64
	for _, e := range s.Expenses {
		if !e.Date.Before(cutoff) {
			total += e.Amount
		}
	}
	return total
}

// TodayTotal sums the expenses whose date matches now at day granularity.
func (s Snapshot) TodayTotal(now time.Time) float64 {
	today := now.Format("2006-01-02")

	var total float64
	for _, e := range s.Expenses {
		if e.DayKey() == today {
			total += e.Amount
		}
	}
	return total
}

// percentOf returns 100*part/whole, or 0 when the whole is not positive.
// Breakdown percentages must never be NaN or Inf on an empty snapshot.
func percentOf(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return 100 * part / whole
}

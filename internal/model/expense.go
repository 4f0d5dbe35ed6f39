// Package model defines the core domain types for the cosmic ledger.
package model

import "time"

// Expense represents a single recorded spending event.
type Expense struct {
	CreatedAt time.Time `json:"createdAt"`
	Date      time.Time `json:"date"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
}

// ExpenseDraft carries the caller-supplied fields for a new expense.
// The store assigns ID and CreatedAt itself.
type ExpenseDraft struct {
	Date     time.Time
	Title    string
	Category string
	Amount   float64
}

// DayKey returns the expense date at day granularity, the form used for
// today-matching and export.
func (e *Expense) DayKey() string {
	return e.Date.Format("2006-01-02")
}

package store

import (
	"context"
	"strings"

	"github.com/cosmic-tools/cosmic-ledger/internal/model"
)

// ImportExpenses clears the expense collection and replaces it with the
// given records. Import is destructive, never a merge. Records keep
// their IDs and creation timestamps when present and unique; missing or
// colliding ones get fresh store-assigned values. Every record must pass
// the same validation as AddExpense; on the first invalid record nothing
// is changed.
//
// The optional progress callback is invoked once per imported record.
func (s *Store) ImportExpenses(ctx context.Context, records []model.Expense, progress func()) (int, error) {
	for i := range records {
		if err := validateExpenseFields(records[i].Title, records[i].Amount, records[i].Category, records[i].Date); err != nil {
			return 0, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	imported := make([]model.Expense, 0, len(records))
	seen := make(map[string]bool, len(records))

	for _, rec := range records {
		rec.Title = strings.TrimSpace(rec.Title)
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = s.now()
		}
		if rec.ID == "" || seen[rec.ID] {
			rec.ID = s.nextID(rec.CreatedAt)
		} else if ms := rec.CreatedAt.UnixMilli(); ms > s.lastID {
			s.lastID = ms
		}
		seen[rec.ID] = true
		imported = append(imported, rec)

		if progress != nil {
			progress()
		}
	}

	s.expenses = imported
	s.persistExpenses(ctx)

	return len(imported), nil
}

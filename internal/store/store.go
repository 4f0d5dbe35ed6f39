// Package store implements the authoritative record store for expenses,
// goals, and settings. Every successful mutation is immediately mirrored
// to the blob store; a failed write is reported as a warning and never
// rolls back the in-memory change.
package store

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cosmic-tools/cosmic-ledger/internal/analytics"
	"github.com/cosmic-tools/cosmic-ledger/internal/blob"
	"github.com/cosmic-tools/cosmic-ledger/internal/common"
	"github.com/cosmic-tools/cosmic-ledger/internal/model"
)

// Store owns all expense and goal records plus the settings. Mutations
// are serialized behind a single mutex; concurrent readers take copies.
type Store struct {
	now      func() time.Time
	blobs    blob.Store
	expenses []model.Expense // newest first
	goals    []model.Goal    // newest first
	settings model.Settings
	lastID   int64
	mu       sync.Mutex

	rejectNegativeBudget bool
}

// Options configures store behavior.
type Options struct {
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
	// RejectNegativeBudget makes SetBudget fail validation for negative
	// amounts instead of accepting them.
	RejectNegativeBudget bool
}

// Open creates a store backed by blobs and loads any previously
// persisted state. A missing key leaves the corresponding default in
// place; a read failure is logged as a warning and treated as missing.
func Open(ctx context.Context, blobs blob.Store, opts Options) *Store {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &Store{
		now:                  now,
		blobs:                blobs,
		settings:             model.DefaultSettings(),
		rejectNegativeBudget: opts.RejectNegativeBudget,
	}
	s.loadAll(ctx)
	return s
}

// AddExpense validates draft, assigns a fresh ID and creation timestamp,
// and inserts the record at the head of the collection.
func (s *Store) AddExpense(ctx context.Context, draft model.ExpenseDraft) (model.Expense, error) {
	if err := validateExpenseFields(draft.Title, draft.Amount, draft.Category, draft.Date); err != nil {
		return model.Expense{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.now()
	expense := model.Expense{
		ID:        s.nextID(createdAt),
		Title:     strings.TrimSpace(draft.Title),
		Amount:    draft.Amount,
		Category:  draft.Category,
		Date:      draft.Date,
		CreatedAt: createdAt,
	}

	s.expenses = append([]model.Expense{expense}, s.expenses...)
	s.persistExpenses(ctx)

	return expense, nil
}

// UpdateExpense replaces the stored record with the given one. The
// stored ID and CreatedAt are always preserved; caller-supplied values
// for those fields are ignored.
func (s *Store) UpdateExpense(ctx context.Context, expense model.Expense) (model.Expense, error) {
	if err := validateExpenseFields(expense.Title, expense.Amount, expense.Category, expense.Date); err != nil {
		return model.Expense{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.expenses {
		if s.expenses[i].ID != expense.ID {
			continue
		}
		expense.ID = s.expenses[i].ID
		expense.CreatedAt = s.expenses[i].CreatedAt
		expense.Title = strings.TrimSpace(expense.Title)
		s.expenses[i] = expense
		s.persistExpenses(ctx)
		return expense, nil
	}

	return model.Expense{}, fmt.Errorf("%w: expense %s", common.ErrNotFound, expense.ID)
}

// DeleteExpense removes the record with the given ID. Deleting an absent
// ID is a no-op.
func (s *Store) DeleteExpense(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			s.persistExpenses(ctx)
			return
		}
	}
}

// ClearExpenses empties the expense collection. Irreversible.
func (s *Store) ClearExpenses(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expenses = nil
	s.persistExpenses(ctx)
}

// AddGoal validates draft and creates a goal with zero progress.
func (s *Store) AddGoal(ctx context.Context, draft model.GoalDraft) (model.Goal, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return model.Goal{}, common.ValidationError("title", "cannot be empty")
	}
	if draft.Target <= 0 || math.IsNaN(draft.Target) || math.IsInf(draft.Target, 0) {
		return model.Goal{}, common.ValidationError("target", "must be a positive number")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.now()
	goal := model.Goal{
		ID:        s.nextID(createdAt),
		Title:     strings.TrimSpace(draft.Title),
		Target:    draft.Target,
		Current:   0,
		CreatedAt: createdAt,
	}

	s.goals = append([]model.Goal{goal}, s.goals...)
	s.persistGoals(ctx)

	return goal, nil
}

// DeleteGoal removes the goal with the given ID. Idempotent.
func (s *Store) DeleteGoal(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.goals {
		if s.goals[i].ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			s.persistGoals(ctx)
			return
		}
	}
}

// SetBudget replaces the monthly budget. Negative amounts are accepted
// unless the store was opened with RejectNegativeBudget.
func (s *Store) SetBudget(ctx context.Context, amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return common.ValidationError("budget", "must be a number")
	}
	if s.rejectNegativeBudget && amount < 0 {
		return common.ValidationError("budget", "cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.Budget = amount
	s.persistBudget(ctx)
	return nil
}

// SetCurrency replaces the display currency symbol unconditionally.
func (s *Store) SetCurrency(ctx context.Context, symbol string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.Currency = symbol
	s.persistCurrency(ctx)
}

// Expenses returns a copy of the expense collection, newest first.
func (s *Store) Expenses() []model.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Expense returns the record with the given ID.
func (s *Store) Expense(id string) (model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return model.Expense{}, fmt.Errorf("%w: expense %s", common.ErrNotFound, id)
}

// Goals returns a copy of the goal collection, newest first.
func (s *Store) Goals() []model.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Settings returns the current settings.
func (s *Store) Settings() model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.settings
}

// Snapshot captures the current state for the analytics engine. The
// returned value shares nothing with the store.
func (s *Store) Snapshot() analytics.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses := make([]model.Expense, len(s.expenses))
	copy(expenses, s.expenses)

	return analytics.Snapshot{
		Expenses:   expenses,
		Budget:     s.settings.Budget,
		Currency:   s.settings.Currency,
		Categories: model.Categories(),
	}
}

// nextID returns a millisecond-timestamp ID, bumped past the previous
// one so two assignments in the same instant still differ. Callers hold
// the mutex.
func (s *Store) nextID(t time.Time) string {
	ms := t.UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return strconv.FormatInt(ms, 10)
}

func validateExpenseFields(title string, amount float64, category string, date time.Time) error {
	if strings.TrimSpace(title) == "" {
		return common.ValidationError("title", "cannot be empty")
	}
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return common.ValidationError("amount", "must be a non-negative number")
	}
	if !model.ValidCategory(category) {
		return common.ValidationError("category", fmt.Sprintf("%q is not a known category", category))
	}
	if date.IsZero() {
		return common.ValidationError("date", "cannot be empty")
	}
	return nil
}

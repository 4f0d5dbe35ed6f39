package store

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/cosmic-tools/cosmic-ledger/internal/blob"
	"github.com/cosmic-tools/cosmic-ledger/internal/common"
	"github.com/cosmic-tools/cosmic-ledger/internal/model"
)

// loadAll restores each aggregate from its own key. A missing key keeps
// the in-memory default; a read or decode failure is reported as a
// warning and treated the same way. Nothing is written back until the
// first real mutation.
func (s *Store) loadAll(ctx context.Context) {
	if raw, ok := s.loadKey(ctx, blob.KeyExpenses); ok {
		var expenses []model.Expense
		if err := json.Unmarshal(raw, &expenses); err != nil {
			common.LogWarn("ignoring unreadable persisted expenses", common.Fields{"error": err})
		} else {
			s.expenses = expenses
			s.seedLastID(expenses)
		}
	}

	if raw, ok := s.loadKey(ctx, blob.KeyGoals); ok {
		var goals []model.Goal
		if err := json.Unmarshal(raw, &goals); err != nil {
			common.LogWarn("ignoring unreadable persisted goals", common.Fields{"error": err})
		} else {
			s.goals = goals
		}
	}

	if raw, ok := s.loadKey(ctx, blob.KeyBudget); ok {
		var budget float64
		if err := json.Unmarshal(raw, &budget); err != nil {
			common.LogWarn("ignoring unreadable persisted budget", common.Fields{"error": err})
		} else {
			s.settings.Budget = budget
		}
	}

	// The currency symbol is stored as a raw string, not JSON-wrapped.
	if raw, ok := s.loadKey(ctx, blob.KeyCurrency); ok {
		s.settings.Currency = string(raw)
	}
}

func (s *Store) loadKey(ctx context.Context, key string) ([]byte, bool) {
	raw, ok, err := s.blobs.Load(ctx, key)
	if err != nil {
		common.LogWarn("failed to load persisted state", common.Fields{"key": key, "error": err})
		return nil, false
	}
	return raw, ok
}

// seedLastID keeps freshly assigned IDs ahead of any persisted ones.
// IDs bumped past their creation instant still count, so numeric IDs are
// considered alongside the creation timestamps.
func (s *Store) seedLastID(expenses []model.Expense) {
	for _, e := range expenses {
		if ms := e.CreatedAt.UnixMilli(); ms > s.lastID {
			s.lastID = ms
		}
		if ms, err := strconv.ParseInt(e.ID, 10, 64); err == nil && ms > s.lastID {
			s.lastID = ms
		}
	}
}

// The persist helpers are called with the mutex held, at the end of each
// mutation. Failures are warnings: the in-memory state stays committed
// and the next successful mutation rewrites the whole document.

func (s *Store) persistExpenses(ctx context.Context) {
	expenses := s.expenses
	if expenses == nil {
		expenses = []model.Expense{}
	}
	s.saveJSON(ctx, blob.KeyExpenses, expenses)
}

func (s *Store) persistGoals(ctx context.Context) {
	goals := s.goals
	if goals == nil {
		goals = []model.Goal{}
	}
	s.saveJSON(ctx, blob.KeyGoals, goals)
}

func (s *Store) persistBudget(ctx context.Context) {
	s.saveJSON(ctx, blob.KeyBudget, s.settings.Budget)
}

func (s *Store) persistCurrency(ctx context.Context) {
	if err := s.blobs.Save(ctx, blob.KeyCurrency, []byte(s.settings.Currency)); err != nil {
		common.LogWarn("failed to persist state", common.Fields{"key": blob.KeyCurrency, "error": err})
	}
}

func (s *Store) saveJSON(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		common.LogWarn("failed to encode state", common.Fields{"key": key, "error": err})
		return
	}
	if err := s.blobs.Save(ctx, key, raw); err != nil {
		common.LogWarn("failed to persist state", common.Fields{"key": key, "error": err})
	}
}

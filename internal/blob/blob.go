// Package blob provides the key-value blob store backing the ledger's
// persistence. Each aggregate is stored as an opaque document under its
// own key; the store never inspects document contents.
package blob

import "context"

// Store is the persistence contract. Load reports absence through its
// second return value rather than an error, so a fresh backend simply
// leaves in-memory defaults untouched.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keys for the independently persisted aggregates.
const (
	KeyExpenses = "expenses"
	KeyGoals    = "goals"
	KeyBudget   = "budget"
	KeyCurrency = "currency"
)

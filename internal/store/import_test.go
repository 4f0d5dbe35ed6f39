package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmic-tools/cosmic-ledger/internal/common"
	"github.com/cosmic-tools/cosmic-ledger/internal/model"
)

func importRecord(id, title string, amount float64) model.Expense {
	return model.Expense{
		ID:        id,
		Title:     title,
		Amount:    amount,
		Category:  "food",
		Date:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestStore_ImportExpenses_ReplacesCollection(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	_, err := st.AddExpense(ctx, draft("Old", 99))
	require.NoError(t, err)

	count, err := st.ImportExpenses(ctx, []model.Expense{
		importRecord("100", "Coffee", 3),
		importRecord("200", "Books", 25),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	expenses := st.Expenses()
	require.Len(t, expenses, 2, "import is destructive, not a merge")
	assert.Equal(t, "100", expenses[0].ID)
	assert.Equal(t, "200", expenses[1].ID)
}

func TestStore_ImportExpenses_PreservesIdentity(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	rec := importRecord("1700000000000", "Coffee", 3)
	count, err := st.ImportExpenses(ctx, []model.Expense{rec}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	got := st.Expenses()[0]
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.CreatedAt, got.CreatedAt)
}

func TestStore_ImportExpenses_AssignsMissingIDs(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	count, err := st.ImportExpenses(ctx, []model.Expense{
		importRecord("", "Coffee", 3),
		importRecord("dup", "Books", 25),
		importRecord("dup", "Pens", 5),
	}, nil)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	seen := make(map[string]bool)
	for _, e := range st.Expenses() {
		assert.NotEmpty(t, e.ID)
		assert.False(t, seen[e.ID], "imported IDs must be unique")
		seen[e.ID] = true
	}
}

func TestStore_ImportExpenses_RejectsInvalidRecord(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	_, err := st.AddExpense(ctx, draft("Keep me", 10))
	require.NoError(t, err)

	bad := importRecord("300", "Bad", -1)
	_, err = st.ImportExpenses(ctx, []model.Expense{importRecord("1", "OK", 2), bad}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)

	// Nothing changed.
	require.Len(t, st.Expenses(), 1)
	assert.Equal(t, "Keep me", st.Expenses()[0].Title)
}

func TestStore_ImportExpenses_ProgressCallback(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	calls := 0
	_, err := st.ImportExpenses(ctx, []model.Expense{
		importRecord("1", "A", 1),
		importRecord("2", "B", 2),
	}, func() { calls++ })
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

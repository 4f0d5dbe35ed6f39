package analytics

import (
	"sort"
	"strings"

	"github.com/cosmic-tools/cosmic-ledger/internal/model"
)

// SortKey selects the ordering for list views.
type SortKey string

// Supported sort keys.
const (
	SortByDate   SortKey = "date"   // date descending (default)
	SortByAmount SortKey = "amount" // amount descending
	SortByTitle  SortKey = "title"  // title ascending
)

// FilterOptions narrows a list view. An empty or "all" category matches
// everything; Search is a case-insensitive substring match on the title.
type FilterOptions struct {
	Category string
	Search   string
}

// FilterExpenses returns the expenses matching opts, preserving their
// relative order.
func FilterExpenses(expenses []model.Expense, opts FilterOptions) []model.Expense {
	search := strings.ToLower(opts.Search)

	out := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if opts.Category != "" && opts.Category != "all" && e.Category != opts.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Title), search) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SortExpenses returns a sorted copy of expenses. Unknown keys fall back
// to date descending.
func SortExpenses(expenses []model.Expense, key SortKey) []model.Expense {
	sorted := make([]model.Expense, len(expenses))
	copy(sorted, expenses)

	switch key {
	case SortByAmount:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Amount > sorted[j].Amount
		})
	case SortByTitle:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Title < sorted[j].Title
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date.After(sorted[j].Date)
		})
	}
	return sorted
}

package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmic-tools/cosmic-ledger/internal/model"
)

func titles(expenses []model.Expense) []string {
	out := make([]string, len(expenses))
	for i, e := range expenses {
		out[i] = e.Title
	}
	return out
}

func TestFilterExpenses(t *testing.T) {
	expenses := []model.Expense{
		expense("Morning Coffee", 40, "food", day(2024, 3, 1)),
		expense("Bus Pass", 300, "transport", day(2024, 3, 2)),
		expense("Coffee Beans", 250, "grocery", day(2024, 3, 3)),
	}

	tests := []struct {
		name string
		opts FilterOptions
		want []string
	}{
		{"no filter", FilterOptions{}, []string{"Morning Coffee", "Bus Pass", "Coffee Beans"}},
		{"all category matches everything", FilterOptions{Category: "all"}, []string{"Morning Coffee", "Bus Pass", "Coffee Beans"}},
		{"single category", FilterOptions{Category: "transport"}, []string{"Bus Pass"}},
		{"search is case-insensitive", FilterOptions{Search: "COFFEE"}, []string{"Morning Coffee", "Coffee Beans"}},
		{"category and search combine", FilterOptions{Category: "grocery", Search: "coffee"}, []string{"Coffee Beans"}},
		{"no matches", FilterOptions{Category: "travel"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterExpenses(expenses, tt.opts)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestFilterExpenses_PreservesOrder(t *testing.T) {
	expenses := []model.Expense{
		expense("C", 1, "food", day(2024, 3, 3)),
		expense("A", 2, "food", day(2024, 3, 1)),
		expense("B", 3, "food", day(2024, 3, 2)),
	}

	got := FilterExpenses(expenses, FilterOptions{Category: "food"})
	assert.Equal(t, []string{"C", "A", "B"}, titles(got))
}

func TestSortExpenses(t *testing.T) {
	expenses := []model.Expense{
		expense("Beta", 50, "food", day(2024, 3, 1)),
		expense("Alpha", 200, "food", day(2024, 3, 3)),
		expense("Gamma", 100, "food", day(2024, 3, 2)),
	}

	tests := []struct {
		name string
		key  SortKey
		want []string
	}{
		{"date descending by default", SortByDate, []string{"Alpha", "Gamma", "Beta"}},
		{"unknown key falls back to date", SortKey("bogus"), []string{"Alpha", "Gamma", "Beta"}},
		{"amount descending", SortByAmount, []string{"Alpha", "Gamma", "Beta"}},
		{"title ascending", SortByTitle, []string{"Alpha", "Beta", "Gamma"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortExpenses(expenses, tt.key)
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestSortExpenses_DoesNotMutateInput(t *testing.T) {
	expenses := []model.Expense{
		expense("B", 1, "food", day(2024, 3, 1)),
		expense("A", 2, "food", day(2024, 3, 2)),
	}

	sorted := SortExpenses(expenses, SortByTitle)
	require.Equal(t, []string{"A", "B"}, titles(sorted))
	assert.Equal(t, []string{"B", "A"}, titles(expenses))
}

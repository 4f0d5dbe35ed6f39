package analytics

import (
	"sort"

	"github.com/cosmic-tools/cosmic-ledger/internal/model"
)

// DefaultTopN is the ranking size used when the caller does not ask for
// a specific one.
const DefaultTopN = 5

// DayAverage is the per-weekday spending summary used by the
// highest-spending-day insight.
type DayAverage struct {
	Day     string
	Total   float64
	Average float64
	Count   int
}

// TopExpenses returns the n largest expenses, amount descending. Ties
// keep their original insertion order. n <= 0 selects DefaultTopN; if
// fewer than n expenses exist, all are returned.
func (s Snapshot) TopExpenses(n int) []model.Expense {
	if n <= 0 {
		n = DefaultTopN
	}

	sorted := make([]model.Expense, len(s.Expenses))
	copy(sorted, s.Expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// LargestExpense returns the single biggest expense, if any.
func (s Snapshot) LargestExpense() (model.Expense, bool) {
	top := s.TopExpenses(1)
	if len(top) == 0 {
		return model.Expense{}, false
	}
	return top[0], true
}

// DailyAverages buckets expenses by weekday name and computes each
// bucket's average, in first-encountered order.
func (s Snapshot) DailyAverages() []DayAverage {
	type agg struct {
		total float64
		count int
	}
	buckets := make(map[string]*agg)
	var order []string

	for _, e := range s.Expenses {
		day := WeekdayLabel(e.Date)
		b, seen := buckets[day]
		if !seen {
			b = &agg{}
			buckets[day] = b
			order = append(order, day)
		}
		b.total += e.Amount
		b.count++
	}

	out := make([]DayAverage, 0, len(order))
	for _, day := range order {
		b := buckets[day]
		out = append(out, DayAverage{
			Day:     day,
			Total:   b.total,
			Count:   b.count,
			Average: b.total / float64(b.count),
		})
	}
	return out
}

// HighestSpendingDay picks the weekday with the maximum average spend.
// Ties resolve to the first-encountered bucket.
func (s Snapshot) HighestSpendingDay() (DayAverage, bool) {
	var best DayAverage
	found := false

	for _, avg := range s.DailyAverages() {
		if !found || avg.Average > best.Average {
			best = avg
			found = true
		}
	}
	return best, found
}

// MostUsedCategory picks the category with the maximum total amount.
// Ties resolve to the first-encountered category.
func (s Snapshot) MostUsedCategory() (CategoryTotal, bool) {
	var best CategoryTotal
	found := false

	for _, ct := range s.CategoryTotals() {
		if !found || ct.Total > best.Total {
			best = ct
			found = true
		}
	}
	return best, found
}

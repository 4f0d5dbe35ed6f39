package analytics

// Health classifies budget usage for display purposes. The engine
// returns the raw percentage; these bands are the conventional consumer
// thresholds.
type Health string

// Health bands.
const (
	HealthHealthy  Health = "healthy"
	HealthWarning  Health = "warning"
	HealthCritical Health = "critical"

	warningPercent  = 60.0
	criticalPercent = 80.0
)

// BudgetStatus reports spending against the monthly budget.
type BudgetStatus struct {
	Spent        float64
	Remaining    float64
	UsagePercent float64
}

// BudgetStatus computes the budget position for the snapshot. With a
// zero (or non-positive) budget the usage percentage is 0, never a
// division artifact.
func (s Snapshot) BudgetStatus() BudgetStatus {
	spent := s.TotalExpenses()

	status := BudgetStatus{
		Spent:     spent,
		Remaining: s.Budget - spent,
	}
	if s.Budget > 0 {
		status.UsagePercent = 100 * spent / s.Budget
	}
	return status
}

// Health applies the display thresholds to the usage percentage.
func (b BudgetStatus) Health() Health {
	switch {
	case b.UsagePercent > criticalPercent:
		return HealthCritical
	case b.UsagePercent > warningPercent:
		return HealthWarning
	default:
		return HealthHealthy
	}
}

package services

import "jobcosting/store"

// StatusIndicator classifies how a job or budget category is tracking.
type StatusIndicator string

const (
	StatusOnTrack    StatusIndicator = "on_track"
	StatusWatch      StatusIndicator = "watch"
	StatusOverBudget StatusIndicator = "over_budget"
	// StatusNone applies to category variance when no budget was set.
	StatusNone StatusIndicator = "none"
)

// The job-level thresholds and the per-category tolerance are separate
// knobs: a job goes to watch above 90% of total budget, while a single
// category only flags over_budget once it exceeds its budget by more than
// 10%. They were never meant to align.
const (
	onTrackMaxPct = 90.0
	watchMaxPct   = 100.0

	categoryOverTolerance = 0.1
)

// JobMetrics holds the derived financial figures shown for a job on every
// page: dashboard, job list, cost entry and reports.
type JobMetrics struct {
	TotalRevenue    float64         `json:"total_revenue"`
	TotalBudget     float64         `json:"total_budget"`
	TotalCost       float64         `json:"total_cost"`
	Profit          float64         `json:"profit"`
	ProfitMarginPct float64         `json:"profit_margin_pct"`
	BudgetUsedPct   float64         `json:"budget_used_pct"`
	Status          StatusIndicator `json:"status_indicator"`
}

// ComputeJobMetrics derives revenue, profit, margin and budget utilization
// for one job. Only approved change orders count as revenue; pending ones
// are excluded. A job with no revenue reports zero profit rather than a
// large loss, so pre-contract estimates don't skew the dashboard.
func ComputeJobMetrics(job store.Job, totals CostTotals) JobMetrics {
	m := JobMetrics{
		TotalRevenue: job.ContractAmount + job.ApprovedChangeOrders,
		TotalBudget: job.BudgetInsurance + job.BudgetLabor + job.BudgetStamps +
			job.BudgetMaterial + job.BudgetSubsBond + job.BudgetEquipment,
		TotalCost: totals.Total,
	}

	if m.TotalRevenue > 0 {
		m.Profit = m.TotalRevenue - m.TotalCost
		m.ProfitMarginPct = m.Profit / m.TotalRevenue * 100
	}
	if m.TotalBudget > 0 {
		m.BudgetUsedPct = m.TotalCost / m.TotalBudget * 100
	}
	m.Status = BudgetStatus(m.BudgetUsedPct)

	return m
}

// BudgetStatus buckets a budget-utilization percentage into the tri-state
// job indicator. Boundaries are inclusive downward: exactly 90% is still
// on_track, exactly 100% is watch.
func BudgetStatus(budgetUsedPct float64) StatusIndicator {
	switch {
	case budgetUsedPct > watchMaxPct:
		return StatusOverBudget
	case budgetUsedPct > onTrackMaxPct:
		return StatusWatch
	default:
		return StatusOnTrack
	}
}

// VarianceStatus classifies a single category's actual spend against its
// budget: over_budget when more than 10% over, watch when over by any
// amount up to 10%, on_track at or under budget, none when no budget was
// set for the category.
func VarianceStatus(actual, budget float64) StatusIndicator {
	if budget == 0 {
		return StatusNone
	}

	variance := actual - budget
	switch {
	case variance > budget*categoryOverTolerance:
		return StatusOverBudget
	case variance > 0:
		return StatusWatch
	default:
		return StatusOnTrack
	}
}

// CategoryVariance is one row of the budget-vs-actual view.
type CategoryVariance struct {
	Category  string          `json:"category"`
	Budget    float64         `json:"budget"`
	Actual    float64         `json:"actual"`
	Variance  float64         `json:"variance"`
	UsedPct   float64         `json:"used_pct"`
	HasBudget bool            `json:"has_budget"`
	Status    StatusIndicator `json:"status"`
}

// BudgetVariances builds the six category rows comparing a job's budget
// fields against its aggregated actuals.
func BudgetVariances(job store.Job, totals CostTotals) []CategoryVariance {
	pairs := []struct {
		category string
		budget   float64
		actual   float64
	}{
		{"Insurance", job.BudgetInsurance, totals.Insurance},
		{"Labor", job.BudgetLabor, totals.Labor},
		{"Stamps", job.BudgetStamps, totals.Stamps},
		{"Materials", job.BudgetMaterial, totals.Material},
		{"Subs/Bond", job.BudgetSubsBond, totals.SubsBond},
		{"Equipment", job.BudgetEquipment, totals.Equipment},
	}

	rows := make([]CategoryVariance, 0, len(pairs))
	for _, p := range pairs {
		row := CategoryVariance{
			Category:  p.category,
			Budget:    p.budget,
			Actual:    p.actual,
			Variance:  p.actual - p.budget,
			HasBudget: p.budget > 0,
			Status:    VarianceStatus(p.actual, p.budget),
		}
		if p.budget > 0 {
			row.UsedPct = p.actual / p.budget * 100
		}
		rows = append(rows, row)
	}
	return rows
}

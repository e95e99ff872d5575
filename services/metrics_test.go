package services

import (
	"math"
	"testing"

	"jobcosting/store"
)

func TestComputeJobMetrics_RevenueAndProfit(t *testing.T) {
	job := store.Job{
		ContractAmount:       100000,
		ApprovedChangeOrders: 10000,
		PendingChangeOrders:  50000, // must not count as revenue
		BudgetLabor:          40000,
		BudgetMaterial:       30000,
	}
	totals := CostTotals{Total: 55000}

	m := ComputeJobMetrics(job, totals)

	if m.TotalRevenue != 110000 {
		t.Errorf("TotalRevenue = %v, want 110000 (pending COs excluded)", m.TotalRevenue)
	}
	if m.Profit != 55000 {
		t.Errorf("Profit = %v, want 55000", m.Profit)
	}
	if math.Abs(m.ProfitMarginPct-50) > 0.001 {
		t.Errorf("ProfitMarginPct = %v, want 50", m.ProfitMarginPct)
	}
	if m.TotalBudget != 70000 {
		t.Errorf("TotalBudget = %v, want 70000", m.TotalBudget)
	}
}

func TestComputeJobMetrics_ZeroRevenueReportsZeroProfit(t *testing.T) {
	job := store.Job{} // estimate with no contract yet
	totals := CostTotals{Total: 5000}

	m := ComputeJobMetrics(job, totals)

	if m.Profit != 0 {
		t.Errorf("Profit = %v, want 0 when revenue is zero", m.Profit)
	}
	if m.ProfitMarginPct != 0 {
		t.Errorf("ProfitMarginPct = %v, want 0 when revenue is zero", m.ProfitMarginPct)
	}
}

func TestComputeJobMetrics_ZeroBudget(t *testing.T) {
	job := store.Job{ContractAmount: 10000}
	totals := CostTotals{Total: 3000}

	m := ComputeJobMetrics(job, totals)

	if m.BudgetUsedPct != 0 {
		t.Errorf("BudgetUsedPct = %v, want 0 with no budget", m.BudgetUsedPct)
	}
	if m.Status != StatusOnTrack {
		t.Errorf("Status = %v, want on_track with no budget", m.Status)
	}
}

func TestBudgetStatus_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		pct    float64
		expect StatusIndicator
	}{
		{"zero", 0, StatusOnTrack},
		{"well under", 50, StatusOnTrack},
		{"exactly 90", 90, StatusOnTrack},
		{"just over 90", 90.1, StatusWatch},
		{"exactly 100", 100, StatusWatch},
		{"just over 100", 100.1, StatusOverBudget},
		{"far over", 250, StatusOverBudget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BudgetStatus(tt.pct); got != tt.expect {
				t.Errorf("BudgetStatus(%v) = %v, want %v", tt.pct, got, tt.expect)
			}
		})
	}
}

func TestBudgetStatus_ThresholdsWithBudget(t *testing.T) {
	// 1000 budget: 900 spent is still on_track, 901 flips to watch,
	// 1000 stays watch, 1001 goes over_budget.
	job := store.Job{ContractAmount: 5000, BudgetLabor: 1000}

	tests := []struct {
		spent  float64
		expect StatusIndicator
	}{
		{900, StatusOnTrack},
		{901, StatusWatch},
		{1000, StatusWatch},
		{1001, StatusOverBudget},
	}

	for _, tt := range tests {
		m := ComputeJobMetrics(job, CostTotals{Total: tt.spent})
		if m.Status != tt.expect {
			t.Errorf("spent %v of 1000: status = %v, want %v", tt.spent, m.Status, tt.expect)
		}
	}
}

func TestVarianceStatus(t *testing.T) {
	tests := []struct {
		name   string
		actual float64
		budget float64
		expect StatusIndicator
	}{
		{"no budget set", 500, 0, StatusNone},
		{"no budget no spend", 0, 0, StatusNone},
		{"under budget", 800, 1000, StatusOnTrack},
		{"exactly at budget", 1000, 1000, StatusOnTrack},
		{"over by less than 10%", 1095, 1000, StatusWatch},
		{"over by exactly 10%", 1100, 1000, StatusWatch},
		{"over by more than 10%", 1101, 1000, StatusOverBudget},
		{"far over", 2000, 1000, StatusOverBudget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VarianceStatus(tt.actual, tt.budget); got != tt.expect {
				t.Errorf("VarianceStatus(%v, %v) = %v, want %v",
					tt.actual, tt.budget, got, tt.expect)
			}
		})
	}
}

func TestBudgetVariances_SixCategories(t *testing.T) {
	job := store.Job{
		BudgetInsurance: 1000,
		BudgetLabor:     50000,
		BudgetMaterial:  20000,
		// stamps, subs/bond and equipment budgets unset
	}
	totals := CostTotals{
		Insurance: 1200,
		Labor:     30000,
		Stamps:    500,
		Material:  20500,
	}

	rows := BudgetVariances(job, totals)
	if len(rows) != 6 {
		t.Fatalf("got %d variance rows, want 6", len(rows))
	}

	byCategory := make(map[string]CategoryVariance, len(rows))
	for _, r := range rows {
		byCategory[r.Category] = r
	}

	if got := byCategory["Insurance"]; got.Status != StatusOverBudget {
		t.Errorf("Insurance status = %v, want over_budget (20%% over)", got.Status)
	}
	if got := byCategory["Labor"]; got.Status != StatusOnTrack {
		t.Errorf("Labor status = %v, want on_track", got.Status)
	}
	if got := byCategory["Materials"]; got.Status != StatusWatch {
		t.Errorf("Materials status = %v, want watch (2.5%% over)", got.Status)
	}
	if got := byCategory["Stamps"]; got.Status != StatusNone || got.HasBudget {
		t.Errorf("Stamps = %+v, want status none with no budget", got)
	}

	ins := byCategory["Insurance"]
	if ins.Variance != 200 {
		t.Errorf("Insurance variance = %v, want 200", ins.Variance)
	}
	if math.Abs(ins.UsedPct-120) > 0.001 {
		t.Errorf("Insurance used pct = %v, want 120", ins.UsedPct)
	}
}

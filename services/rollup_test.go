package services

import (
	"testing"

	"jobcosting/store"
)

func summaryFor(customerID, status string, revenue, cost float64) JobSummary {
	return JobSummary{
		Job:     store.Job{CustomerID: customerID, Status: status},
		Totals:  CostTotals{Total: cost},
		Metrics: JobMetrics{TotalRevenue: revenue, TotalCost: cost, Profit: revenue - cost},
	}
}

func TestFilterByStatus_EmptySetMeansAll(t *testing.T) {
	summaries := []JobSummary{
		summaryFor("c1", "active", 100, 50),
		summaryFor("c1", "completed", 200, 100),
		summaryFor("c2", "estimate", 0, 0),
	}

	got := FilterByStatus(summaries, nil)
	if len(got) != 3 {
		t.Errorf("FilterByStatus(nil) kept %d, want all 3", len(got))
	}

	got = FilterByStatus(summaries, []string{})
	if len(got) != 3 {
		t.Errorf("FilterByStatus(empty) kept %d, want all 3", len(got))
	}
}

func TestFilterByStatus_Subset(t *testing.T) {
	summaries := []JobSummary{
		summaryFor("c1", "active", 100, 50),
		summaryFor("c1", "completed", 200, 100),
		summaryFor("c2", "estimate", 0, 0),
		summaryFor("c2", "active", 300, 150),
	}

	got := FilterByStatus(summaries, []string{"active", "completed"})
	if len(got) != 3 {
		t.Fatalf("kept %d summaries, want 3", len(got))
	}
	for _, s := range got {
		if s.Job.Status == "estimate" {
			t.Errorf("estimate job passed an active/completed filter")
		}
	}
}

func TestRollupByCustomer_GroupsAndSums(t *testing.T) {
	customers := []store.Customer{
		{ID: "c1", Name: "Promethean Construction"},
		{ID: "c2", Name: "Skanska USA"},
	}
	summaries := []JobSummary{
		summaryFor("c1", "active", 100000, 60000),
		summaryFor("c1", "completed", 50000, 40000),
		summaryFor("c2", "active", 300000, 200000),
	}

	rollups := RollupByCustomer(summaries, customers)
	if len(rollups) != 2 {
		t.Fatalf("got %d rollups, want 2", len(rollups))
	}

	// Sorted by revenue descending: Skanska first.
	if rollups[0].CustomerName != "Skanska USA" {
		t.Errorf("first rollup = %q, want Skanska USA (highest revenue)", rollups[0].CustomerName)
	}

	promethean := rollups[1]
	if promethean.JobCount != 2 || promethean.ActiveJobs != 1 {
		t.Errorf("Promethean counts = %d jobs / %d active, want 2 / 1",
			promethean.JobCount, promethean.ActiveJobs)
	}
	if promethean.TotalRevenue != 150000 || promethean.TotalCost != 100000 {
		t.Errorf("Promethean totals = %v revenue / %v cost, want 150000 / 100000",
			promethean.TotalRevenue, promethean.TotalCost)
	}
	if promethean.Profit != 50000 {
		t.Errorf("Promethean profit = %v, want 50000", promethean.Profit)
	}
}

func TestRollupByCustomer_UnresolvableCustomerExcluded(t *testing.T) {
	customers := []store.Customer{{ID: "c1", Name: "Promethean Construction"}}
	summaries := []JobSummary{
		summaryFor("c1", "active", 100000, 60000),
		summaryFor("gone", "active", 999999, 1), // deleted customer
	}

	rollups := RollupByCustomer(summaries, customers)
	if len(rollups) != 1 {
		t.Fatalf("got %d rollups, want 1", len(rollups))
	}
	if rollups[0].TotalRevenue != 100000 {
		t.Errorf("revenue = %v, want 100000; orphaned job must not leak into any group",
			rollups[0].TotalRevenue)
	}
}

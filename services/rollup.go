package services

import (
	"sort"

	"jobcosting/store"
)

// JobSummary pairs a job with its aggregated totals and derived metrics.
type JobSummary struct {
	Job     store.Job  `json:"job"`
	Totals  CostTotals `json:"totals"`
	Metrics JobMetrics `json:"metrics"`
}

// BuildJobSummaries computes totals and metrics for every job. Entries are
// loaded fresh per job; nothing is cached.
func BuildJobSummaries(st *store.Store) ([]JobSummary, error) {
	jobs, err := st.ListJobs()
	if err != nil {
		return nil, err
	}

	summaries := make([]JobSummary, 0, len(jobs))
	for _, job := range jobs {
		totals, err := AggregateJobCosts(st, job.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, JobSummary{
			Job:     job,
			Totals:  totals,
			Metrics: ComputeJobMetrics(job, totals),
		})
	}
	return summaries, nil
}

// FilterByStatus keeps the summaries whose job status is in the given set.
// An empty set means "all", matching the multi-select default in reports.
func FilterByStatus(summaries []JobSummary, statuses []string) []JobSummary {
	if len(statuses) == 0 {
		return summaries
	}

	wanted := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		wanted[s] = true
	}

	filtered := make([]JobSummary, 0, len(summaries))
	for _, s := range summaries {
		if wanted[s.Job.Status] {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// CustomerSummary aggregates revenue, cost and profit across one
// customer's jobs.
type CustomerSummary struct {
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	JobCount     int     `json:"job_count"`
	ActiveJobs   int     `json:"active_jobs"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalCost    float64 `json:"total_cost"`
	Profit       float64 `json:"profit"`
	MarginPct    float64 `json:"margin_pct"`
}

// RollupByCustomer groups job summaries under each customer and sums their
// financials, sorted by revenue descending. Jobs whose customer_id matches
// none of the given customers fall out of the roll-up entirely; the
// resulting undercount versus the full job list is accepted rather than
// bucketed into an "unknown" group.
func RollupByCustomer(summaries []JobSummary, customers []store.Customer) []CustomerSummary {
	rollups := make([]CustomerSummary, 0, len(customers))
	for _, customer := range customers {
		roll := CustomerSummary{
			CustomerID:   customer.ID,
			CustomerName: customer.Name,
		}
		for _, s := range summaries {
			if s.Job.CustomerID != customer.ID {
				continue
			}
			roll.JobCount++
			if s.Job.Status == "active" {
				roll.ActiveJobs++
			}
			roll.TotalRevenue += s.Metrics.TotalRevenue
			roll.TotalCost += s.Metrics.TotalCost
		}
		roll.Profit = roll.TotalRevenue - roll.TotalCost
		if roll.TotalRevenue > 0 {
			roll.MarginPct = roll.Profit / roll.TotalRevenue * 100
		}
		rollups = append(rollups, roll)
	}

	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].TotalRevenue > rollups[j].TotalRevenue
	})
	return rollups
}

package services

import "time"

// JobCostRow is one job line in the job cost summary report.
type JobCostRow struct {
	JobNumber    string
	JobName      string
	CustomerName string
	Status       string
	Contract     float64
	ChangeOrders float64
	TotalRevenue float64
	Insurance    float64
	Labor        float64
	Stamps       float64
	Material     float64
	SubsBond     float64
	Equipment    float64
	TotalCost    float64
	Profit       float64
	MarginPct    float64
	ManDays      int
}

// JobCostReport holds all data needed for the job cost summary export.
type JobCostReport struct {
	Title         string
	GeneratedDate string
	Rows          []JobCostRow
	TotalRevenue  float64
	TotalCost     float64
	TotalProfit   float64
	AvgMarginPct  float64
}

// BuildJobCostReport assembles the job cost summary from a set of job
// summaries (already filtered by the caller). The average margin is the
// profit-weighted aggregate, not a mean of per-job margins.
func BuildJobCostReport(summaries []JobSummary, generated time.Time) JobCostReport {
	report := JobCostReport{
		Title:         "Job Cost Summary",
		GeneratedDate: generated.Format("01/02/2006"),
	}

	for _, s := range summaries {
		customerName := s.Job.CustomerName
		if customerName == "" {
			customerName = "N/A"
		}
		report.Rows = append(report.Rows, JobCostRow{
			JobNumber:    s.Job.JobNumber,
			JobName:      s.Job.JobName,
			CustomerName: customerName,
			Status:       s.Job.Status,
			Contract:     s.Job.ContractAmount,
			ChangeOrders: s.Job.ApprovedChangeOrders,
			TotalRevenue: s.Metrics.TotalRevenue,
			Insurance:    s.Totals.Insurance,
			Labor:        s.Totals.Labor,
			Stamps:       s.Totals.Stamps,
			Material:     s.Totals.Material,
			SubsBond:     s.Totals.SubsBond,
			Equipment:    s.Totals.Equipment,
			TotalCost:    s.Metrics.TotalCost,
			Profit:       s.Metrics.Profit,
			MarginPct:    s.Metrics.ProfitMarginPct,
			ManDays:      s.Totals.ManDays,
		})

		report.TotalRevenue += s.Metrics.TotalRevenue
		report.TotalCost += s.Metrics.TotalCost
		report.TotalProfit += s.Metrics.Profit
	}

	if report.TotalRevenue > 0 {
		report.AvgMarginPct = report.TotalProfit / report.TotalRevenue * 100
	}
	return report
}

// CustomerReport holds all data needed for the customer summary export.
type CustomerReport struct {
	Title         string
	GeneratedDate string
	Rows          []CustomerSummary
}

// BuildCustomerReport wraps per-customer roll-ups for export.
func BuildCustomerReport(rollups []CustomerSummary, generated time.Time) CustomerReport {
	return CustomerReport{
		Title:         "Customer Summary",
		GeneratedDate: generated.Format("01/02/2006"),
		Rows:          rollups,
	}
}

package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"jobcosting/services"
	"jobcosting/store"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func writeDownload(e *core.RequestEvent, contentType, filename string, data []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", filename))
	e.Response.WriteHeader(http.StatusOK)
	_, err := e.Response.Write(data)
	return err
}

// HandleJobCostReport builds the job cost summary across jobs, filtered by
// zero or more ?status= values (none selected means all jobs). With
// ?format=xlsx or ?format=pdf the report downloads as a file; otherwise the
// rows come back as JSON.
// Route: GET /reports/job-cost-summary?status=active&format=xlsx
func HandleJobCostReport(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		summaries, err := services.BuildJobSummaries(st)
		if err != nil {
			return writeStoreError(e, "report_job_cost", err)
		}

		query := e.Request.URL.Query()
		summaries = services.FilterByStatus(summaries, query["status"])

		now := time.Now()
		report := services.BuildJobCostReport(summaries, now)

		switch query.Get("format") {
		case "xlsx":
			data, err := services.GenerateJobCostExcel(report)
			if err != nil {
				return writeStoreError(e, "report_job_cost_excel", err)
			}
			filename := fmt.Sprintf("job_cost_summary_%s.xlsx", now.Format("2006-01-02"))
			return writeDownload(e, excelContentType, filename, data)
		case "pdf":
			data, err := services.GenerateJobCostPDF(report)
			if err != nil {
				return writeStoreError(e, "report_job_cost_pdf", err)
			}
			filename := fmt.Sprintf("job_cost_summary_%s.pdf", now.Format("2006-01-02"))
			return writeDownload(e, "application/pdf", filename, data)
		default:
			return e.JSON(http.StatusOK, report)
		}
	}
}

// HandleCustomerReport rolls up revenue, cost and profit per customer
// across all jobs. Jobs whose customer cannot be resolved are left out of
// the roll-up. ?format=xlsx downloads the report as a spreadsheet.
// Route: GET /reports/customer-summary?format=xlsx
func HandleCustomerReport(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		summaries, err := services.BuildJobSummaries(st)
		if err != nil {
			return writeStoreError(e, "report_customer", err)
		}
		customers, err := st.ListCustomers()
		if err != nil {
			return writeStoreError(e, "report_customer", err)
		}

		now := time.Now()
		report := services.BuildCustomerReport(services.RollupByCustomer(summaries, customers), now)

		if e.Request.URL.Query().Get("format") == "xlsx" {
			data, err := services.GenerateCustomerSummaryExcel(report)
			if err != nil {
				return writeStoreError(e, "report_customer_excel", err)
			}
			filename := fmt.Sprintf("customer_summary_%s.xlsx", now.Format("2006-01-02"))
			return writeDownload(e, excelContentType, filename, data)
		}
		return e.JSON(http.StatusOK, report)
	}
}

// HandleBudgetReport returns the per-category budget-vs-actual breakdown
// for one job.
// Route: GET /reports/budget-vs-actual/{id}
func HandleBudgetReport(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing job ID"})
		}

		job, err := st.GetJob(id)
		if err != nil {
			return writeStoreError(e, "report_budget", err)
		}
		totals, err := services.AggregateJobCosts(st, id)
		if err != nil {
			return writeStoreError(e, "report_budget", err)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"job":       job,
			"totals":    totals,
			"metrics":   services.ComputeJobMetrics(job, totals),
			"variances": services.BudgetVariances(job, totals),
		})
	}
}

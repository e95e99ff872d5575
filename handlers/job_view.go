package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"jobcosting/services"
	"jobcosting/store"
)

// HandleJobView returns one job with its cost totals, derived metrics,
// budget-vs-actual rows and full weekly cost history.
// Route: GET /jobs/{id}
func HandleJobView(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing job ID"})
		}

		job, err := st.GetJob(id)
		if err != nil {
			return writeStoreError(e, "job_view", err)
		}

		entries, err := st.ListWeeklyCosts(id)
		if err != nil {
			return writeStoreError(e, "job_view", err)
		}

		totals := services.SumCosts(entries)
		return e.JSON(http.StatusOK, map[string]any{
			"job":          job,
			"totals":       totals,
			"metrics":      services.ComputeJobMetrics(job, totals),
			"variances":    services.BudgetVariances(job, totals),
			"weekly_costs": entries,
		})
	}
}

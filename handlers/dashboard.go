package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"jobcosting/services"
	"jobcosting/store"
)

// HandleDashboard returns the company-wide overview: per-job summaries for
// active jobs plus portfolio totals across them.
// Route: GET /dashboard
func HandleDashboard(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		summaries, err := services.BuildJobSummaries(st)
		if err != nil {
			return writeStoreError(e, "dashboard", err)
		}
		active := services.FilterByStatus(summaries, []string{"active"})

		var revenue, cost, profit float64
		for _, s := range active {
			revenue += s.Metrics.TotalRevenue
			cost += s.Metrics.TotalCost
			profit += s.Metrics.Profit
		}
		var marginPct float64
		if revenue > 0 {
			marginPct = profit / revenue * 100
		}

		return e.JSON(http.StatusOK, map[string]any{
			"jobs": active,
			"totals": map[string]any{
				"active_jobs":   len(active),
				"total_revenue": revenue,
				"total_cost":    cost,
				"total_profit":  profit,
				"margin_pct":    marginPct,
			},
		})
	}
}

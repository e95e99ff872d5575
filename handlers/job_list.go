package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"jobcosting/services"
	"jobcosting/store"
)

// HandleJobList returns every job with computed totals and metrics,
// optionally narrowed by a free-text search over job number, name and
// customer, and by a status filter.
// Route: GET /jobs?q=...&status=...
func HandleJobList(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		summaries, err := services.BuildJobSummaries(st)
		if err != nil {
			return writeStoreError(e, "job_list", err)
		}

		query := e.Request.URL.Query()
		if statuses := query["status"]; len(statuses) > 0 {
			summaries = services.FilterByStatus(summaries, statuses)
		}
		if q := strings.TrimSpace(query.Get("q")); q != "" {
			summaries = filterJobSearch(summaries, q)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"jobs":     summaries,
			"statuses": store.JobStatuses,
		})
	}
}

func filterJobSearch(summaries []services.JobSummary, q string) []services.JobSummary {
	q = strings.ToLower(q)
	matched := make([]services.JobSummary, 0, len(summaries))
	for _, s := range summaries {
		if strings.Contains(strings.ToLower(s.Job.JobNumber), q) ||
			strings.Contains(strings.ToLower(s.Job.JobName), q) ||
			strings.Contains(strings.ToLower(s.Job.CustomerName), q) {
			matched = append(matched, s)
		}
	}
	return matched
}

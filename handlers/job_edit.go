package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"jobcosting/store"
)

// HandleJobUpdate overwrites the editable fields of a job. The job number
// is fixed at creation; any job_number in the form is ignored.
// Route: POST /jobs/{id}/save
func HandleJobUpdate(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing job ID"})
		}
		if err := e.Request.ParseForm(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid form data"})
		}

		job, err := st.UpdateJob(id, jobFromForm(e.Request))
		if err != nil {
			return writeStoreError(e, "job_update", err)
		}
		return e.JSON(http.StatusOK, job)
	}
}

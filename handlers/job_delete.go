package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"jobcosting/store"
)

// HandleJobDelete removes a job and, via the cascade on the relation, all
// of its weekly cost entries.
// Route: DELETE /jobs/{id}
func HandleJobDelete(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing job ID"})
		}

		if err := st.DeleteJob(id); err != nil {
			return writeStoreError(e, "job_delete", err)
		}
		return e.NoContent(http.StatusNoContent)
	}
}

package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"jobcosting/store"
)

// HandleCustomerDelete soft-deletes a customer. Jobs referencing it keep
// their customer id and fall back to "N/A" in displays.
// Route: DELETE /customers/{id}
func HandleCustomerDelete(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing customer ID"})
		}

		if err := st.SoftDeleteCustomer(id); err != nil {
			return writeStoreError(e, "customer_delete", err)
		}
		return e.NoContent(http.StatusNoContent)
	}
}

package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"jobcosting/store"
)

// HandleCustomerUpdate overwrites an existing customer's fields.
// Route: POST /customers/{id}/save
func HandleCustomerUpdate(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing customer ID"})
		}
		if err := e.Request.ParseForm(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid form data"})
		}

		customer, err := st.UpdateCustomer(id, customerFromForm(e.Request))
		if err != nil {
			return writeStoreError(e, "customer_update", err)
		}
		return e.JSON(http.StatusOK, customer)
	}
}

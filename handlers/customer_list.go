package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"jobcosting/store"
)

// HandleCustomerList returns all active customers.
// Route: GET /customers
func HandleCustomerList(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customers, err := st.ListCustomers()
		if err != nil {
			return writeStoreError(e, "customer_list", err)
		}
		return e.JSON(http.StatusOK, map[string]any{"customers": customers})
	}
}

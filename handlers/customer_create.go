package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"jobcosting/store"
)

func customerFromForm(r *http.Request) store.Customer {
	return store.Customer{
		Name:        strings.TrimSpace(r.FormValue("name")),
		ContactName: strings.TrimSpace(r.FormValue("contact_name")),
		Phone:       strings.TrimSpace(r.FormValue("phone")),
		Email:       strings.TrimSpace(r.FormValue("email")),
		Address:     strings.TrimSpace(r.FormValue("address")),
		Notes:       strings.TrimSpace(r.FormValue("notes")),
	}
}

// HandleCustomerSave creates a new customer.
// Route: POST /customers
func HandleCustomerSave(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid form data"})
		}

		customer, err := st.CreateCustomer(customerFromForm(e.Request))
		if err != nil {
			return writeStoreError(e, "customer_create", err)
		}
		return e.JSON(http.StatusOK, customer)
	}
}

package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"jobcosting/store"
)

// HandleVendorUpdate overwrites an existing vendor's fields.
// Route: POST /vendors/{id}/save
func HandleVendorUpdate(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing vendor ID"})
		}
		if err := e.Request.ParseForm(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid form data"})
		}

		vendor, err := st.UpdateVendor(id, vendorFromForm(e.Request))
		if err != nil {
			return writeStoreError(e, "vendor_update", err)
		}
		return e.JSON(http.StatusOK, vendor)
	}
}

package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"jobcosting/store"
)

// HandleVendorDelete soft-deletes a vendor.
// Route: DELETE /vendors/{id}
func HandleVendorDelete(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing vendor ID"})
		}

		if err := st.SoftDeleteVendor(id); err != nil {
			return writeStoreError(e, "vendor_delete", err)
		}
		return e.NoContent(http.StatusNoContent)
	}
}

package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"jobcosting/store"
)

// HandleVendorList returns all active vendors.
// Route: GET /vendors
func HandleVendorList(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		vendors, err := st.ListVendors()
		if err != nil {
			return writeStoreError(e, "vendor_list", err)
		}
		return e.JSON(http.StatusOK, map[string]any{
			"vendors":      vendors,
			"vendor_types": store.VendorTypes,
		})
	}
}

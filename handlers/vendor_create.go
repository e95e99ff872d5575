package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"jobcosting/store"
)

func vendorFromForm(r *http.Request) store.Vendor {
	return store.Vendor{
		Name:        strings.TrimSpace(r.FormValue("name")),
		VendorType:  strings.TrimSpace(r.FormValue("vendor_type")),
		ContactName: strings.TrimSpace(r.FormValue("contact_name")),
		Phone:       strings.TrimSpace(r.FormValue("phone")),
		Email:       strings.TrimSpace(r.FormValue("email")),
		Notes:       strings.TrimSpace(r.FormValue("notes")),
	}
}

// HandleVendorSave creates a new vendor.
// Route: POST /vendors
func HandleVendorSave(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid form data"})
		}

		vendor, err := st.CreateVendor(vendorFromForm(e.Request))
		if err != nil {
			return writeStoreError(e, "vendor_create", err)
		}
		return e.JSON(http.StatusOK, vendor)
	}
}

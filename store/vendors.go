package store

import (
	"fmt"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

// VendorTypes lists the allowed vendor classifications, mirroring the
// select field on the vendors collection.
var VendorTypes = []string{"supplier", "subcontractor", "equipment"}

// ListVendors returns all active vendors sorted by name.
func (s *Store) ListVendors() ([]Vendor, error) {
	records, err := s.app.FindRecordsByFilter("vendors", "is_active = true", "name", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}

	vendors := make([]Vendor, 0, len(records))
	for _, r := range records {
		vendors = append(vendors, vendorFromRecord(r))
	}
	return vendors, nil
}

// GetVendor returns the vendor with the given id, active or not.
func (s *Store) GetVendor(id string) (Vendor, error) {
	record, err := s.app.FindRecordById("vendors", id)
	if err != nil {
		return Vendor{}, ErrNotFound
	}
	return vendorFromRecord(record), nil
}

// CreateVendor validates and inserts a new vendor. Name is required and
// checked case-insensitively against the active vendor set; vendor_type
// must be one of VendorTypes.
func (s *Store) CreateVendor(v Vendor) (Vendor, error) {
	v.Name = strings.TrimSpace(v.Name)

	errs := &ValidationError{Fields: map[string]string{}}
	if v.Name == "" {
		errs.Fields["name"] = "Vendor name is required"
	}
	if !validVendorType(v.VendorType) {
		errs.Fields["vendor_type"] = "Vendor type must be supplier, subcontractor or equipment"
	}
	if len(errs.Fields) > 0 {
		return Vendor{}, errs
	}

	existing, err := s.ListVendors()
	if err != nil {
		return Vendor{}, fmt.Errorf("create vendor: %w", err)
	}
	for _, other := range existing {
		if strings.EqualFold(other.Name, v.Name) {
			return Vendor{}, newValidationError("name", "A vendor with this name already exists")
		}
	}

	col, err := s.app.FindCollectionByNameOrId("vendors")
	if err != nil {
		return Vendor{}, fmt.Errorf("create vendor: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("name", v.Name)
	record.Set("vendor_type", v.VendorType)
	record.Set("contact_name", v.ContactName)
	record.Set("phone", v.Phone)
	record.Set("email", v.Email)
	record.Set("address", v.Address)
	record.Set("notes", v.Notes)
	record.Set("is_active", true)

	if err := s.app.Save(record); err != nil {
		return Vendor{}, fmt.Errorf("create vendor: %w", err)
	}
	return vendorFromRecord(record), nil
}

// UpdateVendor overwrites the editable fields of an existing vendor.
func (s *Store) UpdateVendor(id string, v Vendor) (Vendor, error) {
	record, err := s.app.FindRecordById("vendors", id)
	if err != nil {
		return Vendor{}, ErrNotFound
	}

	name := strings.TrimSpace(v.Name)
	if name == "" {
		return Vendor{}, newValidationError("name", "Vendor name is required")
	}
	if !validVendorType(v.VendorType) {
		return Vendor{}, newValidationError("vendor_type", "Vendor type must be supplier, subcontractor or equipment")
	}

	record.Set("name", name)
	record.Set("vendor_type", v.VendorType)
	record.Set("contact_name", v.ContactName)
	record.Set("phone", v.Phone)
	record.Set("email", v.Email)
	record.Set("address", v.Address)
	record.Set("notes", v.Notes)

	if err := s.app.Save(record); err != nil {
		return Vendor{}, fmt.Errorf("update vendor %s: %w", id, err)
	}
	return vendorFromRecord(record), nil
}

// SoftDeleteVendor marks a vendor inactive.
func (s *Store) SoftDeleteVendor(id string) error {
	record, err := s.app.FindRecordById("vendors", id)
	if err != nil {
		return ErrNotFound
	}

	record.Set("is_active", false)
	if err := s.app.Save(record); err != nil {
		return fmt.Errorf("soft delete vendor %s: %w", id, err)
	}
	return nil
}

func validVendorType(t string) bool {
	for _, opt := range VendorTypes {
		if t == opt {
			return true
		}
	}
	return false
}

package store

import (
	"fmt"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

// ListCustomers returns all active customers sorted by name.
func (s *Store) ListCustomers() ([]Customer, error) {
	records, err := s.app.FindRecordsByFilter("customers", "is_active = true", "name", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	customers := make([]Customer, 0, len(records))
	for _, r := range records {
		customers = append(customers, customerFromRecord(r))
	}
	return customers, nil
}

// GetCustomer returns the customer with the given id, active or not.
func (s *Store) GetCustomer(id string) (Customer, error) {
	record, err := s.app.FindRecordById("customers", id)
	if err != nil {
		return Customer{}, ErrNotFound
	}
	return customerFromRecord(record), nil
}

// CreateCustomer validates and inserts a new customer. The name is required
// and must not collide case-insensitively with an active customer. The
// duplicate check runs at creation time only; lookups elsewhere stay
// exact-match.
func (s *Store) CreateCustomer(c Customer) (Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return Customer{}, newValidationError("name", "Customer name is required")
	}

	existing, err := s.ListCustomers()
	if err != nil {
		return Customer{}, fmt.Errorf("create customer: %w", err)
	}
	for _, other := range existing {
		if strings.EqualFold(other.Name, c.Name) {
			return Customer{}, newValidationError("name", "A customer with this name already exists")
		}
	}

	col, err := s.app.FindCollectionByNameOrId("customers")
	if err != nil {
		return Customer{}, fmt.Errorf("create customer: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("name", c.Name)
	record.Set("contact_name", c.ContactName)
	record.Set("phone", c.Phone)
	record.Set("email", c.Email)
	record.Set("address", c.Address)
	record.Set("notes", c.Notes)
	record.Set("is_active", true)

	if err := s.app.Save(record); err != nil {
		return Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return customerFromRecord(record), nil
}

// UpdateCustomer overwrites the editable fields of an existing customer.
func (s *Store) UpdateCustomer(id string, c Customer) (Customer, error) {
	record, err := s.app.FindRecordById("customers", id)
	if err != nil {
		return Customer{}, ErrNotFound
	}

	name := strings.TrimSpace(c.Name)
	if name == "" {
		return Customer{}, newValidationError("name", "Customer name is required")
	}

	record.Set("name", name)
	record.Set("contact_name", c.ContactName)
	record.Set("phone", c.Phone)
	record.Set("email", c.Email)
	record.Set("address", c.Address)
	record.Set("notes", c.Notes)

	if err := s.app.Save(record); err != nil {
		return Customer{}, fmt.Errorf("update customer %s: %w", id, err)
	}
	return customerFromRecord(record), nil
}

// SoftDeleteCustomer marks a customer inactive. The record is never hard
// deleted; jobs referencing it keep their customer id.
func (s *Store) SoftDeleteCustomer(id string) error {
	record, err := s.app.FindRecordById("customers", id)
	if err != nil {
		return ErrNotFound
	}

	record.Set("is_active", false)
	if err := s.app.Save(record); err != nil {
		return fmt.Errorf("soft delete customer %s: %w", id, err)
	}
	return nil
}

package store

import (
	"errors"
	"testing"

	"jobcosting/testhelpers"
)

func TestCreateCustomer(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := New(app)

	customer, err := st.CreateCustomer(Customer{
		Name:        "Promethean Construction",
		ContactName: "Mike Johnson",
		Phone:       "212-555-0101",
	})
	if err != nil {
		t.Fatalf("CreateCustomer() error = %v", err)
	}

	if customer.ID == "" {
		t.Error("expected non-empty customer ID")
	}
	if !customer.IsActive {
		t.Error("new customer should be active")
	}
	if customer.Name != "Promethean Construction" {
		t.Errorf("Name = %q", customer.Name)
	}
}

func TestCreateCustomer_RequiresName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := New(app)

	_, err := st.CreateCustomer(Customer{Name: "   "})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := vErr.Fields["name"]; !ok {
		t.Errorf("expected error on name field, got %v", vErr.Fields)
	}
}

func TestCreateCustomer_DuplicateNameCaseInsensitive(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := New(app)

	if _, err := st.CreateCustomer(Customer{Name: "Skanska USA"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := st.CreateCustomer(Customer{Name: "skanska usa"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for duplicate name, got %v", err)
	}
}

func TestCreateCustomer_ReusesSoftDeletedName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := New(app)

	first, err := st.CreateCustomer(Customer{Name: "Turner Construction"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := st.SoftDeleteCustomer(first.ID); err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}

	// The duplicate check only looks at active customers.
	if _, err := st.CreateCustomer(Customer{Name: "Turner Construction"}); err != nil {
		t.Errorf("recreating a soft-deleted name should succeed, got %v", err)
	}
}

func TestSoftDeleteCustomer_HidesFromList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := New(app)

	customer, err := st.CreateCustomer(Customer{Name: "Promethean Construction"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := st.SoftDeleteCustomer(customer.ID); err != nil {
		t.Fatalf("SoftDeleteCustomer() error = %v", err)
	}

	customers, err := st.ListCustomers()
	if err != nil {
		t.Fatalf("ListCustomers() error = %v", err)
	}
	if len(customers) != 0 {
		t.Errorf("soft-deleted customer still listed: %v", customers)
	}

	// The record itself survives and is still fetchable by id.
	got, err := st.GetCustomer(customer.ID)
	if err != nil {
		t.Fatalf("GetCustomer() after soft delete error = %v", err)
	}
	if got.IsActive {
		t.Error("soft-deleted customer should be inactive")
	}
}

func TestGetCustomer_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := New(app)

	_, err := st.GetCustomer("missing123")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateCustomer(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	st := New(app)

	customer, err := st.CreateCustomer(Customer{Name: "Skanska USA", Phone: "212-555-0102"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := st.UpdateCustomer(customer.ID, Customer{
		Name:  "Skanska USA Building",
		Phone: "212-555-0199",
	})
	if err != nil {
		t.Fatalf("UpdateCustomer() error = %v", err)
	}

	if updated.Name != "Skanska USA Building" || updated.Phone != "212-555-0199" {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.ID != customer.ID {
		t.Errorf("update changed the record id")
	}
}

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"jobcosting/testhelpers"
)

func TestHandleCustomerSave_Valid(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleCustomerSave(newTestStore(app))

	form := url.Values{}
	form.Set("name", "Promethean Construction")
	form.Set("contact_name", "Mike Johnson")
	form.Set("phone", "212-555-0101")

	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	records, err := app.FindRecordsByFilter("customers", "name = {:n}", "", 1, 0,
		map[string]any{"n": "Promethean Construction"})
	if err != nil || len(records) == 0 {
		t.Error("expected customer to be created in database")
	}
}

func TestHandleCustomerSave_MissingName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleCustomerSave(newTestStore(app))

	form := url.Values{}
	form.Set("name", "  ")

	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleCustomerList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCustomer(t, app, "Skanska USA")
	testhelpers.CreateTestCustomer(t, app, "Promethean Construction")
	handler := HandleCustomerList(newTestStore(app))

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var body struct {
		Customers []struct {
			Name string `json:"name"`
		} `json:"customers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(body.Customers) != 2 {
		t.Fatalf("got %d customers, want 2", len(body.Customers))
	}
	// Sorted by name.
	if body.Customers[0].Name != "Promethean Construction" {
		t.Errorf("first customer = %q, want Promethean Construction", body.Customers[0].Name)
	}
}

func TestHandleCustomerDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Turner Construction")
	handler := HandleCustomerDelete(newTestStore(app))

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/customers/%s", customer.Id), nil)
	req.SetPathValue("id", customer.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}

	// Soft delete: the record survives but is inactive.
	record, err := app.FindRecordById("customers", customer.Id)
	if err != nil {
		t.Fatalf("customer record hard-deleted: %v", err)
	}
	if record.GetBool("is_active") {
		t.Error("customer still active after delete")
	}
}

func TestHandleCustomerUpdate_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleCustomerUpdate(newTestStore(app))

	form := url.Values{}
	form.Set("name", "Ghost GC")

	req := httptest.NewRequest(http.MethodPost, "/customers/missing123/save",
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", "missing123")
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

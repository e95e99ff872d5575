// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"jobcosting/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestCustomer creates an active customer record with the given name.
func CreateTestCustomer(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		t.Fatalf("failed to find customers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("contact_name", "Test Contact")
	record.Set("phone", "555-0100")
	record.Set("is_active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test customer: %v", err)
	}

	return record
}

// CreateTestVendor creates an active vendor record with the given name and type.
func CreateTestVendor(t *testing.T, app *pocketbase.PocketBase, name, vendorType string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("vendors")
	if err != nil {
		t.Fatalf("failed to find vendors collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("vendor_type", vendorType)
	record.Set("contact_name", "Test Contact")
	record.Set("phone", "555-0101")
	record.Set("is_active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test vendor: %v", err)
	}

	return record
}

// CreateTestJob creates a job record with the given number, name and status.
func CreateTestJob(t *testing.T, app *pocketbase.PocketBase, jobNumber, jobName, status string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("jobs")
	if err != nil {
		t.Fatalf("failed to find jobs collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("job_number", jobNumber)
	record.Set("job_name", jobName)
	record.Set("status", status)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test job: %v", err)
	}

	return record
}

// CreateTestWeeklyCost creates a weekly cost entry for a job with the given
// labor amount; the other categories stay zero.
func CreateTestWeeklyCost(t *testing.T, app *pocketbase.PocketBase, jobID, weekEnding string, labor float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("weekly_costs")
	if err != nil {
		t.Fatalf("failed to find weekly_costs collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("job", jobID)
	record.Set("week_ending", weekEnding)
	record.Set("labor_actual", labor)
	record.Set("man_days_actual", 5)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test weekly cost: %v", err)
	}

	return record
}

// Package store wraps the PocketBase collections behind typed records and
// explicit CRUD operations. Every component that needs persistence receives
// a *Store instance; nothing in the application reaches for a global.
package store

import "github.com/pocketbase/pocketbase/core"

// Store is the record store backing the job-costing app. It is a thin layer
// over the PocketBase collections created in collections.Setup: it maps
// records to typed structs, enforces creation-time validation, and owns the
// weekly-cost upsert rule.
type Store struct {
	app core.App
}

// New returns a Store backed by the given PocketBase app.
func New(app core.App) *Store {
	return &Store{app: app}
}

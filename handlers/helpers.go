// Package handlers wires the job-costing store and services to HTTP. Every
// handler is a closure over an explicit *store.Store; responses are JSON
// except for the report file downloads.
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"jobcosting/store"
)

// writeStoreError maps store errors onto HTTP responses: field-level
// validation failures become 400s carrying the field map so forms can
// redisplay, missing records become 404s, and anything else (the store
// being unreachable) is logged and surfaced as a 500 with no retry.
func writeStoreError(e *core.RequestEvent, op string, err error) error {
	var vErr *store.ValidationError
	if errors.As(err, &vErr) {
		return e.JSON(http.StatusBadRequest, map[string]any{"errors": vErr.Fields})
	}
	if errors.Is(err, store.ErrNotFound) {
		return e.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	}

	log.Printf("%s: %v", op, err)
	return e.JSON(http.StatusInternalServerError,
		map[string]string{"error": "Something went wrong. Please try again."})
}

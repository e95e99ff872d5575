package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"jobcosting/services"
	"jobcosting/store"
)

// weekSelectorSize is how many recent Saturdays the cost entry form offers.
const weekSelectorSize = 12

// HandleCostEntryPage returns what the weekly cost entry form needs for a
// job: the recent week-ending Saturdays to choose from, and the existing
// entry for the requested week, if any, so the form can prefill. An absent
// entry is not an error; existing is simply null.
// Route: GET /jobs/{id}/costs?week=YYYY-MM-DD
func HandleCostEntryPage(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing job ID"})
		}

		job, err := st.GetJob(id)
		if err != nil {
			return writeStoreError(e, "cost_entry_page", err)
		}

		week := strings.TrimSpace(e.Request.URL.Query().Get("week"))
		if week == "" {
			week = services.FormatWeekEnding(services.WeekEnding(time.Now()))
		}

		existing, err := st.GetWeeklyCostEntry(id, week)
		if err != nil {
			return writeStoreError(e, "cost_entry_page", err)
		}

		weekOptions := make([]string, 0, weekSelectorSize)
		for _, w := range services.LastNWeekEndings(time.Now(), weekSelectorSize) {
			weekOptions = append(weekOptions, services.FormatWeekEnding(w))
		}

		return e.JSON(http.StatusOK, map[string]any{
			"job":          job,
			"week_ending":  week,
			"week_options": weekOptions,
			"existing":     existing,
		})
	}
}

// HandleCostEntrySave upserts the weekly costs for one (job, week) pair.
// Submitting the same week twice overwrites the earlier figures.
// Route: POST /jobs/{id}/costs
func HandleCostEntrySave(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Missing job ID"})
		}
		if err := e.Request.ParseForm(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid form data"})
		}

		if _, err := st.GetJob(id); err != nil {
			return writeStoreError(e, "cost_entry_save", err)
		}

		r := e.Request
		entry, err := st.UpsertWeeklyCost(store.WeeklyCostEntry{
			JobID:           id,
			WeekEnding:      strings.TrimSpace(r.FormValue("week_ending")),
			InsuranceActual: store.ToFloat(r.FormValue("insurance_actual")),
			LaborActual:     store.ToFloat(r.FormValue("labor_actual")),
			StampsActual:    store.ToFloat(r.FormValue("stamps_actual")),
			MaterialActual:  store.ToFloat(r.FormValue("material_actual")),
			SubsBondActual:  store.ToFloat(r.FormValue("subs_bond_actual")),
			EquipmentActual: store.ToFloat(r.FormValue("equipment_actual")),
			ManDaysActual:   store.ToInt(r.FormValue("man_days_actual")),
			Notes:           strings.TrimSpace(r.FormValue("notes")),
		})
		if err != nil {
			return writeStoreError(e, "cost_entry_save", err)
		}
		return e.JSON(http.StatusOK, entry)
	}
}

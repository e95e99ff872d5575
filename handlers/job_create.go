package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"jobcosting/services"
	"jobcosting/store"
)

// jobFromForm reads a job out of form values. Numeric fields run through
// the lenient converters, so a blank or garbled amount lands as zero
// instead of failing the whole save.
func jobFromForm(r *http.Request) store.Job {
	return store.Job{
		JobNumber:            strings.TrimSpace(r.FormValue("job_number")),
		JobName:              strings.TrimSpace(r.FormValue("job_name")),
		CustomerID:           strings.TrimSpace(r.FormValue("customer_id")),
		ContractAmount:       store.ToFloat(r.FormValue("contract_amount")),
		PendingChangeOrders:  store.ToFloat(r.FormValue("pending_change_orders")),
		ApprovedChangeOrders: store.ToFloat(r.FormValue("approved_change_orders")),
		Status:               strings.TrimSpace(r.FormValue("status")),
		StartDate:            strings.TrimSpace(r.FormValue("start_date")),
		BudgetInsurance:      store.ToFloat(r.FormValue("budget_insurance")),
		BudgetLabor:          store.ToFloat(r.FormValue("budget_labor")),
		BudgetStamps:         store.ToFloat(r.FormValue("budget_stamps")),
		BudgetMaterial:       store.ToFloat(r.FormValue("budget_material")),
		BudgetSubsBond:       store.ToFloat(r.FormValue("budget_subs_bond")),
		BudgetEquipment:      store.ToFloat(r.FormValue("budget_equipment")),
		BudgetManDays:        store.ToInt(r.FormValue("budget_man_days")),
		Notes:                strings.TrimSpace(r.FormValue("notes")),
	}
}

// HandleJobSave creates a new job.
// Route: POST /jobs
func HandleJobSave(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid form data"})
		}

		job, err := st.CreateJob(jobFromForm(e.Request))
		if err != nil {
			return writeStoreError(e, "job_create", err)
		}
		return e.JSON(http.StatusOK, job)
	}
}

// HandleNextJobNumber suggests the next sequential job number for the
// new-job form.
// Route: GET /jobs/next-number
func HandleNextJobNumber(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		number, err := services.NextJobNumber(st)
		if err != nil {
			return writeStoreError(e, "job_next_number", err)
		}
		return e.JSON(http.StatusOK, map[string]string{"job_number": number})
	}
}

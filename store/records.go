package store

import "github.com/pocketbase/pocketbase/core"

// Customer is a general contractor the company performs jobs for.
// Customers are soft-deleted: IsActive=false hides them from listings but
// jobs keep referencing the record.
type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
}

// Vendor is a supplier, subcontractor or equipment provider. Same
// soft-delete rule as Customer.
type Vendor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	VendorType  string `json:"vendor_type"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
}

// Job is a single contracted wall-installation project tracked for cost and
// profitability. CustomerName is resolved at read time and stays empty when
// the customer reference is missing or dangling.
type Job struct {
	ID                   string  `json:"id"`
	JobNumber            string  `json:"job_number"`
	JobName              string  `json:"job_name"`
	CustomerID           string  `json:"customer_id"`
	CustomerName         string  `json:"customer_name"`
	ContractAmount       float64 `json:"contract_amount"`
	PendingChangeOrders  float64 `json:"pending_change_orders"`
	ApprovedChangeOrders float64 `json:"approved_change_orders"`
	Status               string  `json:"status"`
	StartDate            string  `json:"start_date"`
	BudgetInsurance      float64 `json:"budget_insurance"`
	BudgetLabor          float64 `json:"budget_labor"`
	BudgetStamps         float64 `json:"budget_stamps"`
	BudgetMaterial       float64 `json:"budget_material"`
	BudgetSubsBond       float64 `json:"budget_subs_bond"`
	BudgetEquipment      float64 `json:"budget_equipment"`
	BudgetManDays        int     `json:"budget_man_days"`
	Notes                string  `json:"notes"`
	CreatedAt            string  `json:"created_at"`
	UpdatedAt            string  `json:"updated_at"`
}

// WeeklyCostEntry holds one week of actual costs for a job. At most one
// entry exists per (JobID, WeekEnding) pair; UpsertWeeklyCost enforces this.
type WeeklyCostEntry struct {
	ID              string  `json:"id"`
	JobID           string  `json:"job_id"`
	WeekEnding      string  `json:"week_ending"`
	InsuranceActual float64 `json:"insurance_actual"`
	LaborActual     float64 `json:"labor_actual"`
	StampsActual    float64 `json:"stamps_actual"`
	MaterialActual  float64 `json:"material_actual"`
	SubsBondActual  float64 `json:"subs_bond_actual"`
	EquipmentActual float64 `json:"equipment_actual"`
	ManDaysActual   int     `json:"man_days_actual"`
	Notes           string  `json:"notes"`
	CreatedAt       string  `json:"created_at"`
}

func customerFromRecord(r *core.Record) Customer {
	return Customer{
		ID:          r.Id,
		Name:        r.GetString("name"),
		ContactName: r.GetString("contact_name"),
		Phone:       r.GetString("phone"),
		Email:       r.GetString("email"),
		Address:     r.GetString("address"),
		Notes:       r.GetString("notes"),
		IsActive:    r.GetBool("is_active"),
		CreatedAt:   r.GetString("created"),
	}
}

func vendorFromRecord(r *core.Record) Vendor {
	return Vendor{
		ID:          r.Id,
		Name:        r.GetString("name"),
		VendorType:  r.GetString("vendor_type"),
		ContactName: r.GetString("contact_name"),
		Phone:       r.GetString("phone"),
		Email:       r.GetString("email"),
		Address:     r.GetString("address"),
		Notes:       r.GetString("notes"),
		IsActive:    r.GetBool("is_active"),
		CreatedAt:   r.GetString("created"),
	}
}

func jobFromRecord(r *core.Record) Job {
	return Job{
		ID:                   r.Id,
		JobNumber:            r.GetString("job_number"),
		JobName:              r.GetString("job_name"),
		CustomerID:           r.GetString("customer"),
		ContractAmount:       ToFloat(r.Get("contract_amount")),
		PendingChangeOrders:  ToFloat(r.Get("pending_change_orders")),
		ApprovedChangeOrders: ToFloat(r.Get("approved_change_orders")),
		Status:               r.GetString("status"),
		StartDate:            r.GetString("start_date"),
		BudgetInsurance:      ToFloat(r.Get("budget_insurance")),
		BudgetLabor:          ToFloat(r.Get("budget_labor")),
		BudgetStamps:         ToFloat(r.Get("budget_stamps")),
		BudgetMaterial:       ToFloat(r.Get("budget_material")),
		BudgetSubsBond:       ToFloat(r.Get("budget_subs_bond")),
		BudgetEquipment:      ToFloat(r.Get("budget_equipment")),
		BudgetManDays:        ToInt(r.Get("budget_man_days")),
		Notes:                r.GetString("notes"),
		CreatedAt:            r.GetString("created"),
		UpdatedAt:            r.GetString("updated"),
	}
}

func weeklyCostFromRecord(r *core.Record) WeeklyCostEntry {
	return WeeklyCostEntry{
		ID:              r.Id,
		JobID:           r.GetString("job"),
		WeekEnding:      r.GetString("week_ending"),
		InsuranceActual: ToFloat(r.Get("insurance_actual")),
		LaborActual:     ToFloat(r.Get("labor_actual")),
		StampsActual:    ToFloat(r.Get("stamps_actual")),
		MaterialActual:  ToFloat(r.Get("material_actual")),
		SubsBondActual:  ToFloat(r.Get("subs_bond_actual")),
		EquipmentActual: ToFloat(r.Get("equipment_actual")),
		ManDaysActual:   ToInt(r.Get("man_days_actual")),
		Notes:           r.GetString("notes"),
		CreatedAt:       r.GetString("created"),
	}
}

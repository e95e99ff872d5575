package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// VendorTypeOptions lists the allowed vendor classifications.
var VendorTypeOptions = []string{"supplier", "subcontractor", "equipment"}

// JobStatusOptions lists the allowed job lifecycle states.
var JobStatusOptions = []string{"estimate", "active", "completed", "closed"}

// Setup programmatically creates/ensures the customers, vendors, jobs and
// weekly_costs collections exist.
func Setup(app *pocketbase.PocketBase) {
	customers := ensureCollection(app, "customers", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "contact_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.BoolField{Name: "is_active"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "vendors", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "vendor_type",
			Required:  true,
			Values:    VendorTypeOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "contact_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.BoolField{Name: "is_active"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	jobs := ensureCollection(app, "jobs", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "job_number", Required: true})
		c.Fields.Add(&core.TextField{Name: "job_name", Required: true})
		// Customer is referenced, not owned: deleting a customer leaves the
		// job with a dangling reference that displays as "N/A".
		c.Fields.Add(&core.RelationField{
			Name:         "customer",
			Required:     false,
			CollectionId: customers.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "contract_amount", Min: zeroMin()})
		c.Fields.Add(&core.NumberField{Name: "pending_change_orders", Min: zeroMin()})
		c.Fields.Add(&core.NumberField{Name: "approved_change_orders", Min: zeroMin()})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    JobStatusOptions,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "start_date", Required: false})
		c.Fields.Add(&core.NumberField{Name: "budget_insurance", Min: zeroMin()})
		c.Fields.Add(&core.NumberField{Name: "budget_labor", Min: zeroMin()})
		c.Fields.Add(&core.NumberField{Name: "budget_stamps", Min: zeroMin()})
		c.Fields.Add(&core.NumberField{Name: "budget_material", Min: zeroMin()})
		c.Fields.Add(&core.NumberField{Name: "budget_subs_bond", Min: zeroMin()})
		c.Fields.Add(&core.NumberField{Name: "budget_equipment", Min: zeroMin()})
		c.Fields.Add(&core.NumberField{Name: "budget_man_days", Min: zeroMin(), OnlyInt: true})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "weekly_costs", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "job",
			Required:      true,
			CollectionId:  jobs.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		// Stored as a plain YYYY-MM-DD string. Callers pass a Saturday
		// normalized via services.WeekEnding; the (job, week_ending) pair
		// is matched by exact string equality in the upsert.
		c.Fields.Add(&core.TextField{Name: "week_ending", Required: true})
		c.Fields.Add(&core.NumberField{Name: "insurance_actual", Min: zeroMin()})
		c.Fields.Add(&core.NumberField{Name: "labor_actual", Min: zeroMin()})
		c.Fields.Add(&core.NumberField{Name: "stamps_actual", Min: zeroMin()})
		c.Fields.Add(&core.NumberField{Name: "material_actual", Min: zeroMin()})
		c.Fields.Add(&core.NumberField{Name: "subs_bond_actual", Min: zeroMin()})
		c.Fields.Add(&core.NumberField{Name: "equipment_actual", Min: zeroMin()})
		c.Fields.Add(&core.NumberField{Name: "man_days_actual", Min: zeroMin(), OnlyInt: true})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}

func zeroMin() *float64 {
	zero := 0.0
	return &zero
}

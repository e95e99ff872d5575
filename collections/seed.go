package collections

import (
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type seedCustomer struct {
	name, contactName, phone, email, address, notes string
}

type seedVendor struct {
	name, vendorType, contactName, phone, email, address, notes string
}

type seedJob struct {
	jobNumber, jobName, customerName                string
	contract, pendingCOs, approvedCOs               float64
	status, startDate                               string
	insurance, labor, stamps, material, subs, equip float64
	manDays                                         int
	notes                                           string
}

var seedCustomers = []seedCustomer{
	{"Promethean Construction", "Mike Johnson", "212-555-0101", "mike@promethean.com",
		"123 Main St, NYC", "Preferred GC, always pays on time"},
	{"Skanska USA", "Sarah Chen", "212-555-0102", "schen@skanska.com",
		"456 Park Ave, NYC", "Large commercial projects"},
	{"Turner Construction", "Bob Williams", "212-555-0103", "bwilliams@turner.com",
		"789 Broadway, NYC", ""},
}

var seedVendors = []seedVendor{
	{"ABC Materials Supply", "supplier", "Tom Smith", "718-555-0201",
		"orders@abcmaterials.com", "100 Industrial Blvd, Brooklyn", "Net 30 terms"},
	{"Metro Scaffolding", "equipment", "Joe Martinez", "718-555-0202",
		"joe@metroscaff.com", "200 Warehouse St, Queens", "Weekly rental rates available"},
	{"Elite Masonry Subs", "subcontractor", "Frank DeLuca", "718-555-0203",
		"frank@elitemasonry.com", "300 Stone Ave, Bronx", "Union shop"},
}

var seedJobs = []seedJob{
	{"550", "Linden Grove Apartments", "Promethean Construction",
		485000, 15000, 8500, "active", "2024-06-01",
		12000, 180000, 25000, 145000, 65000, 28000, 450, "Phase 1 exterior walls"},
	{"548", "Harbor View Tower", "Skanska USA",
		720000, 0, 32000, "active", "2024-04-15",
		18000, 275000, 38000, 210000, 95000, 42000, 680, "High-rise, floors 15-30"},
	{"545", "Riverside Office Complex", "Turner Construction",
		325000, 5000, 12000, "completed", "2024-01-10",
		8000, 125000, 17000, 98000, 45000, 18000, 310, "Completed ahead of schedule"},
	{"552", "Greenpoint Retail Center", "Promethean Construction",
		195000, 8000, 0, "estimate", "",
		5000, 72000, 10000, 58000, 28000, 12000, 180, "Awaiting permit approval"},
}

// Seed loads sample customers, vendors, jobs and weekly cost history so the
// dashboard has something to show on a fresh database. It is a no-op when
// any customer already exists.
func Seed(app *pocketbase.PocketBase) error {
	existing, err := app.FindRecordsByFilter("customers", "", "", 1, 0)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	customerIDs, err := seedCustomerRecords(app)
	if err != nil {
		return err
	}
	if err := seedVendorRecords(app); err != nil {
		return err
	}
	if err := seedJobRecords(app, customerIDs); err != nil {
		return err
	}

	log.Printf("Seeded %d customers, %d vendors, %d jobs with weekly cost history",
		len(seedCustomers), len(seedVendors), len(seedJobs))
	return nil
}

func seedCustomerRecords(app *pocketbase.PocketBase) (map[string]string, error) {
	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		return nil, fmt.Errorf("seed customers: %w", err)
	}

	ids := make(map[string]string, len(seedCustomers))
	for _, c := range seedCustomers {
		record := core.NewRecord(col)
		record.Set("name", c.name)
		record.Set("contact_name", c.contactName)
		record.Set("phone", c.phone)
		record.Set("email", c.email)
		record.Set("address", c.address)
		record.Set("notes", c.notes)
		record.Set("is_active", true)
		if err := app.Save(record); err != nil {
			return nil, fmt.Errorf("seed customer %s: %w", c.name, err)
		}
		ids[c.name] = record.Id
	}
	return ids, nil
}

func seedVendorRecords(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("vendors")
	if err != nil {
		return fmt.Errorf("seed vendors: %w", err)
	}

	for _, v := range seedVendors {
		record := core.NewRecord(col)
		record.Set("name", v.name)
		record.Set("vendor_type", v.vendorType)
		record.Set("contact_name", v.contactName)
		record.Set("phone", v.phone)
		record.Set("email", v.email)
		record.Set("address", v.address)
		record.Set("notes", v.notes)
		record.Set("is_active", true)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed vendor %s: %w", v.name, err)
		}
	}
	return nil
}

func seedJobRecords(app *pocketbase.PocketBase, customerIDs map[string]string) error {
	jobsCol, err := app.FindCollectionByNameOrId("jobs")
	if err != nil {
		return fmt.Errorf("seed jobs: %w", err)
	}
	costsCol, err := app.FindCollectionByNameOrId("weekly_costs")
	if err != nil {
		return fmt.Errorf("seed jobs: %w", err)
	}

	for _, j := range seedJobs {
		record := core.NewRecord(jobsCol)
		record.Set("job_number", j.jobNumber)
		record.Set("job_name", j.jobName)
		record.Set("customer", customerIDs[j.customerName])
		record.Set("contract_amount", j.contract)
		record.Set("pending_change_orders", j.pendingCOs)
		record.Set("approved_change_orders", j.approvedCOs)
		record.Set("status", j.status)
		record.Set("start_date", j.startDate)
		record.Set("budget_insurance", j.insurance)
		record.Set("budget_labor", j.labor)
		record.Set("budget_stamps", j.stamps)
		record.Set("budget_material", j.material)
		record.Set("budget_subs_bond", j.subs)
		record.Set("budget_equipment", j.equip)
		record.Set("budget_man_days", j.manDays)
		record.Set("notes", j.notes)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed job %s: %w", j.jobNumber, err)
		}

		if err := seedWeeklyCosts(app, costsCol, record.Id, j); err != nil {
			return err
		}
	}
	return nil
}

// seedWeeklyCosts writes a deterministic cost history: each week spends
// 1/20th of every category budget, so an active job with 12 weeks of history
// sits at 60% budget used. Estimate jobs get no history.
func seedWeeklyCosts(app *pocketbase.PocketBase, col *core.Collection, jobID string, j seedJob) error {
	var numWeeks int
	switch j.status {
	case "active":
		numWeeks = 12
	case "completed":
		numWeeks = 18
	default:
		return nil
	}

	week := lastSaturday(time.Now())
	for i := 0; i < numWeeks; i++ {
		record := core.NewRecord(col)
		record.Set("job", jobID)
		record.Set("week_ending", week.AddDate(0, 0, -7*i).Format("2006-01-02"))
		record.Set("insurance_actual", j.insurance/20)
		record.Set("labor_actual", j.labor/20)
		record.Set("stamps_actual", j.stamps/20)
		record.Set("material_actual", j.material/20)
		record.Set("subs_bond_actual", j.subs/20)
		record.Set("equipment_actual", j.equip/20)
		record.Set("man_days_actual", 25)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed weekly costs for job %s: %w", j.jobNumber, err)
		}
	}
	return nil
}

func lastSaturday(t time.Time) time.Time {
	days := (int(t.Weekday()) - int(time.Saturday) + 7) % 7
	if days == 0 {
		days = 7
	}
	d := t.AddDate(0, 0, -days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

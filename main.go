package main

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"jobcosting/collections"
	"jobcosting/handlers"
	"jobcosting/store"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		st := store.New(app)

		// ── Dashboard ────────────────────────────────────────────
		se.Router.GET("/dashboard", handlers.HandleDashboard(st))

		// ── Customer CRUD ────────────────────────────────────────
		se.Router.GET("/customers", handlers.HandleCustomerList(st))
		se.Router.POST("/customers", handlers.HandleCustomerSave(st))
		se.Router.POST("/customers/{id}/save", handlers.HandleCustomerUpdate(st))
		se.Router.DELETE("/customers/{id}", handlers.HandleCustomerDelete(st))

		// ── Vendor CRUD ──────────────────────────────────────────
		se.Router.GET("/vendors", handlers.HandleVendorList(st))
		se.Router.POST("/vendors", handlers.HandleVendorSave(st))
		se.Router.POST("/vendors/{id}/save", handlers.HandleVendorUpdate(st))
		se.Router.DELETE("/vendors/{id}", handlers.HandleVendorDelete(st))

		// ── Job CRUD (next-number before {id} so it doesn't match as an ID) ──
		se.Router.GET("/jobs", handlers.HandleJobList(st))
		se.Router.POST("/jobs", handlers.HandleJobSave(st))
		se.Router.GET("/jobs/next-number", handlers.HandleNextJobNumber(st))
		se.Router.GET("/jobs/{id}", handlers.HandleJobView(st))
		se.Router.POST("/jobs/{id}/save", handlers.HandleJobUpdate(st))
		se.Router.DELETE("/jobs/{id}", handlers.HandleJobDelete(st))

		// ── Weekly cost entry ────────────────────────────────────
		se.Router.GET("/jobs/{id}/costs", handlers.HandleCostEntryPage(st))
		se.Router.POST("/jobs/{id}/costs", handlers.HandleCostEntrySave(st))

		// ── Reports ──────────────────────────────────────────────
		se.Router.GET("/reports/job-cost-summary", handlers.HandleJobCostReport(st))
		se.Router.GET("/reports/customer-summary", handlers.HandleCustomerReport(st))
		se.Router.GET("/reports/budget-vs-actual/{id}", handlers.HandleBudgetReport(st))

		// Redirect home to the dashboard
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/dashboard")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

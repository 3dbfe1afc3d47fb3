package route

import (
	"github.com/gofiber/fiber/v2"

	"koperasi_backend/internals/features/finance/financial_entries/controller"
	"koperasi_backend/internals/features/finance/financial_entries/repository"
	"koperasi_backend/internals/route/deps"
)

// Dipasang sebelum route laporan agar /financial/entries tidak tertangkap /financial/:id.
func FinancialEntryRoutes(api fiber.Router, d deps.Deps) {
	ctrl := controller.NewFinancialEntryController(repository.NewFinancialEntryRepository(d.DB), d.Events)
	guard := d.AdminGuard()

	r := api.Group("/financial/entries")
	r.Get("/", ctrl.GetEntries)
	r.Get("/summary", ctrl.GetSummary)
	r.Post("/", guard, ctrl.CreateEntry)
	r.Delete("/:id", guard, ctrl.DeleteEntry)
}

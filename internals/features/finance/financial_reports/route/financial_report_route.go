package route

import (
	"github.com/gofiber/fiber/v2"

	"koperasi_backend/internals/features/finance/financial_reports/controller"
	"koperasi_backend/internals/features/finance/financial_reports/repository"
	"koperasi_backend/internals/route/deps"
)

func FinancialReportRoutes(api fiber.Router, d deps.Deps) {
	ctrl := controller.NewFinancialReportController(repository.NewFinancialReportRepository(d.DB), d.Blob, d.Events)
	guard := d.AdminGuard()

	r := api.Group("/financial")
	r.Get("/", ctrl.GetReports)
	r.Get("/:id", ctrl.GetReportByID)
	r.Post("/", guard, ctrl.UploadReport)
	r.Delete("/:id", guard, ctrl.DeleteReport)
}

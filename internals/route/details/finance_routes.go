package details

import (
	FinancialEntryRoutes "koperasi_backend/internals/features/finance/financial_entries/route"
	FinancialReportRoutes "koperasi_backend/internals/features/finance/financial_reports/route"
	"koperasi_backend/internals/route/deps"

	"github.com/gofiber/fiber/v2"
)

// ✅ Keuangan
// Urutan penting: /financial/entries harus terdaftar sebelum /financial/:id.
func FinanceRoutes(api fiber.Router, d deps.Deps) {
	FinancialEntryRoutes.FinancialEntryRoutes(api, d)
	FinancialReportRoutes.FinancialReportRoutes(api, d)
}

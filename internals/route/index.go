// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"koperasi_backend/internals/route/deps"
	routeDetails "koperasi_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, d deps.Deps) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app)

	// ===================== API =====================
	api := app.Group("/api")

	log.Println("[INFO] Mounting Auth routes...")
	routeDetails.AuthRoutes(api, d)

	log.Println("[INFO] Mounting Home routes...")
	routeDetails.HomeRoutes(api, d)

	log.Println("[INFO] Mounting Lembaga routes...")
	routeDetails.LembagaRoutes(api, d)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinanceRoutes(api, d)

	log.Println("[INFO] Mounting Utils routes...")
	routeDetails.UtilsRoutes(api, d)

	// Frontend statis (opsional) didaftarkan paling akhir agar tidak menutupi /api.
	mountStatic(app)
}

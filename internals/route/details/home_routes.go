package details

import (
	ActivityRoutes "koperasi_backend/internals/features/home/activities/route"
	PencapaianRoutes "koperasi_backend/internals/features/home/pencapaian/route"
	"koperasi_backend/internals/route/deps"

	"github.com/gofiber/fiber/v2"
)

// ✅ Konten beranda
// Contoh akses: /api/activities, /api/pencapaian
func HomeRoutes(api fiber.Router, d deps.Deps) {
	ActivityRoutes.ActivityRoutes(api, d)
	PencapaianRoutes.PencapaianRoutes(api, d)
}

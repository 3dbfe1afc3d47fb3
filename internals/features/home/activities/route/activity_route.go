package route

import (
	"github.com/gofiber/fiber/v2"

	"koperasi_backend/internals/features/home/activities/controller"
	"koperasi_backend/internals/features/home/activities/repository"
	"koperasi_backend/internals/route/deps"
)

// 🌐 Public read + admin write
func ActivityRoutes(api fiber.Router, d deps.Deps) {
	ctrl := controller.NewActivityController(repository.NewActivityRepository(d.DB), d.Blob, d.Events)
	guard := d.AdminGuard()

	r := api.Group("/activities")
	r.Get("/", ctrl.GetAllActivities)    // 📄 Semua kegiatan (tanggal terbaru dulu)
	r.Get("/:id", ctrl.GetActivityByID)  // 🔍 Detail kegiatan
	r.Post("/", guard, ctrl.CreateActivity)
	r.Put("/:id", guard, ctrl.UpdateActivity)
	r.Delete("/", guard, ctrl.DeleteActivity)    // ?id=
	r.Delete("/:id", guard, ctrl.DeleteActivity)
}

package route

import (
	"github.com/gofiber/fiber/v2"

	"koperasi_backend/internals/features/home/pencapaian/controller"
	"koperasi_backend/internals/features/home/pencapaian/repository"
	"koperasi_backend/internals/route/deps"
)

func PencapaianRoutes(api fiber.Router, d deps.Deps) {
	ctrl := controller.NewPencapaianController(repository.NewPencapaianRepository(d.DB), d.Events)

	api.Get("/pencapaian", ctrl.GetPencapaian)
	api.Post("/pencapaian", d.AdminGuard(), ctrl.SavePencapaian)
}

package route

import (
	"github.com/gofiber/fiber/v2"

	"koperasi_backend/internals/features/lembaga/cooperative/controller"
	"koperasi_backend/internals/features/lembaga/cooperative/repository"
	"koperasi_backend/internals/route/deps"
)

func CooperativeRoutes(api fiber.Router, d deps.Deps) {
	ctrl := controller.NewCooperativeController(repository.NewCooperativeRepository(d.DB), d.Events)
	guard := d.AdminGuard()

	api.Get("/cooperative", ctrl.GetCooperative)
	api.Post("/cooperative", guard, ctrl.SaveCooperative)
	api.Put("/cooperative", guard, ctrl.SaveCooperative)
}

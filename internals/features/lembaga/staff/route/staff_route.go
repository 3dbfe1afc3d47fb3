package route

import (
	"github.com/gofiber/fiber/v2"

	"koperasi_backend/internals/features/lembaga/staff/controller"
	"koperasi_backend/internals/features/lembaga/staff/repository"
	"koperasi_backend/internals/route/deps"
)

func StaffRoutes(api fiber.Router, d deps.Deps) {
	ctrl := controller.NewStaffController(repository.NewStaffRepository(d.DB), d.Blob, d.Events)
	guard := d.AdminGuard()

	r := api.Group("/staff")
	r.Get("/", ctrl.GetStaff) // ?category=
	r.Post("/", guard, ctrl.CreateStaff)
	r.Put("/", guard, ctrl.UpdateStaff) // id di body
	r.Put("/:id", guard, ctrl.UpdateStaff)
	r.Delete("/", guard, ctrl.DeleteStaff) // ?id=
	r.Delete("/:id", guard, ctrl.DeleteStaff)
}

package route

import (
	"github.com/gofiber/fiber/v2"

	"koperasi_backend/internals/features/lembaga/members/controller"
	"koperasi_backend/internals/features/lembaga/members/repository"
	"koperasi_backend/internals/route/deps"
)

func MemberRoutes(api fiber.Router, d deps.Deps) {
	ctrl := controller.NewMemberController(repository.NewMemberRepository(d.DB), d.Events)
	guard := d.AdminGuard()

	r := api.Group("/members")
	r.Get("/", ctrl.GetMembers)
	r.Get("/:id", ctrl.GetMemberByID)
	r.Post("/", guard, ctrl.CreateMember)
	r.Put("/:id", guard, ctrl.UpdateMember)
	r.Delete("/", guard, ctrl.DeleteMember) // ?id=
	r.Delete("/:id", guard, ctrl.DeleteMember)
}

package details

import (
	CooperativeRoutes "koperasi_backend/internals/features/lembaga/cooperative/route"
	MemberRoutes "koperasi_backend/internals/features/lembaga/members/route"
	StaffRoutes "koperasi_backend/internals/features/lembaga/staff/route"
	"koperasi_backend/internals/route/deps"

	"github.com/gofiber/fiber/v2"
)

// ✅ Profil lembaga: info koperasi, pengurus, anggota
// Contoh akses: /api/cooperative, /api/staff?category=pengurus, /api/members
func LembagaRoutes(api fiber.Router, d deps.Deps) {
	CooperativeRoutes.CooperativeRoutes(api, d)
	StaffRoutes.StaffRoutes(api, d)
	MemberRoutes.MemberRoutes(api, d)
}

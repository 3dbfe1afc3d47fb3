package details

import (
	adminAuthRoute "koperasi_backend/internals/features/users/admin_auth/route"
	"koperasi_backend/internals/route/deps"

	"github.com/gofiber/fiber/v2"
)

// 🔐 /api/admin/login, /api/admin/me, /api/admin/password
func AuthRoutes(api fiber.Router, d deps.Deps) {
	adminAuthRoute.AdminAuthRoutes(api, d)
}

package route

import (
	"github.com/gofiber/fiber/v2"

	"koperasi_backend/internals/configs"
	"koperasi_backend/internals/features/users/admin_auth/controller"
	"koperasi_backend/internals/features/users/admin_auth/repository"
	"koperasi_backend/internals/features/users/admin_auth/service"
	"koperasi_backend/internals/middlewares"
	authMiddleware "koperasi_backend/internals/middlewares/auth"
	"koperasi_backend/internals/route/deps"
)

func AdminAuthRoutes(api fiber.Router, d deps.Deps) {
	passwords := service.NewPasswordService(repository.NewAdminCredentialRepository(d.DB))
	ctrl := controller.NewAdminAuthController(passwords, configs.JWTSecret)

	admin := api.Group("/admin")

	// 🔓 login selalu publik
	admin.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	// 🔐 selalu butuh token, terlepas dari ADMIN_AUTH_REQUIRED
	strict := authMiddleware.AdminGuard(authMiddleware.AdminGuardOpts{Secret: configs.JWTSecret, Required: true})
	admin.Get("/me", strict, ctrl.Me)
	admin.Put("/password", strict, ctrl.ChangePassword)
}

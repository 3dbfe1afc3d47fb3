// internals/middlewares/auth/admin_guard.go
package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	helper "koperasi_backend/internals/helpers"
	helperAuth "koperasi_backend/internals/helpers/auth"
)

type AdminGuardOpts struct {
	Secret string
	// Required=false meloloskan semua request (mode default, gating di sisi UI).
	Required bool
}

// AdminGuard memverifikasi Bearer token admin untuk route yang mengubah data.
func AdminGuard(opts AdminGuardOpts) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !opts.Required {
			return c.Next()
		}

		raw, err := helperAuth.ExtractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		if _, err := helperAuth.ParseAdminToken(opts.Secret, raw); err != nil {
			if errors.Is(err, helperAuth.ErrMissingSecret) {
				log.Println("[ERROR] JWT_SECRET kosong")
				return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
			}
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Token tidak valid atau kedaluwarsa")
		}

		c.Locals(helperAuth.LocAdmin, true)
		c.Locals(helperAuth.LocRawToken, raw)
		return c.Next()
	}
}

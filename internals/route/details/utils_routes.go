package details

import (
	uploadRoute "koperasi_backend/internals/features/utils/uploads/route"
	"koperasi_backend/internals/route/deps"

	"github.com/gofiber/fiber/v2"
)

func UtilsRoutes(api fiber.Router, d deps.Deps) {
	uploadRoute.UploadRoutes(api, d)
}

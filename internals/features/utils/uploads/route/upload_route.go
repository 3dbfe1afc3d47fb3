package route

import (
	"github.com/gofiber/fiber/v2"

	"koperasi_backend/internals/features/utils/uploads/controller"
	"koperasi_backend/internals/route/deps"
)

func UploadRoutes(api fiber.Router, d deps.Deps) {
	ctrl := controller.NewUploadController(d.Blob)

	api.Post("/uploads/images", d.AdminGuard(), ctrl.UploadImage)
}

package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError mengubah *fiber.Error dari helper (upload, parsing) jadi JSON konsisten.
// Selain *fiber.Error dianggap 500 dengan pesan fallback, detail error tidak dibocorkan.
func FromFiberError(c *fiber.Ctx, err error, fallback string) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, fallback)
}

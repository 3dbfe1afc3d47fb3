// Package deps menampung dependensi bersama yang dioper ke setiap route fitur.
package deps

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"koperasi_backend/internals/helpers/events"
	"koperasi_backend/internals/helpers/storage"
)

type Deps struct {
	DB     *gorm.DB
	Blob   storage.BlobService // nil bila STORAGE_DRIVER=none
	Events events.Publisher
	// Guard dipasang di route yang mengubah data (AdminGuard).
	Guard fiber.Handler
}

// AdminGuard tidak pernah nil supaya route bisa langsung memakainya.
func (d Deps) AdminGuard() fiber.Handler {
	if d.Guard == nil {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return d.Guard
}

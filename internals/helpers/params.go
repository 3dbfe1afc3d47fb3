package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var (
	ErrIDRequired = fiber.NewError(fiber.StatusBadRequest, "ID is required")
	ErrIDInvalid  = fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
)

// ParseID mem-parse UUID dari string mentah (path, query atau body).
func ParseID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, ErrIDRequired
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrIDInvalid
	}
	return id, nil
}

// ResolveID: path param :id dulu, lalu query ?id= (gaya DELETE /api/x?id=...).
func ResolveID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Params("id")
	if strings.TrimSpace(raw) == "" {
		raw = c.Query("id")
	}
	return ParseID(raw)
}

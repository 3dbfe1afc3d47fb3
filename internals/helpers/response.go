package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validate dipakai bersama oleh semua controller.
var Validate = validator.New()

// ValidationError mengubah validator.ValidationErrors jadi map field -> tag.
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	errorsMap := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		errorsMap[lowerFirst(fieldErr.Field())] = fieldErr.Tag()
	}
	return JsonValidationError(c, errorsMap)
}

// lowerFirst menyamakan nama field dengan key JSON camelCase.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// BindAndValidate: BodyParser (JSON/form/multipart) → Normalize (bila ada) → validator.
func BindAndValidate(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if n, ok := dst.(interface{ Normalize() }); ok {
		n.Normalize()
	}
	return Validate.Struct(dst)
}

// RequestError menulis response untuk error dari BindAndValidate.
func RequestError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ValidationError(c, err)
	}
	return FromFiberError(c, err, "Invalid input")
}

// file: internals/helpers/storage/multipartx.go
package storage

import (
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// IsMultipart menilai request multipart/form-data
func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

// Nama-nama field umum untuk upload gambar
var defaultImageFields = []string{"image", "file", "photo", "picture"}

// GetFormFile mencari file dari beberapa kemungkinan field form.
// Jika tidak ada file, kembalikan nil supaya controller bisa fallback ke URL.
func GetFormFile(c *fiber.Ctx, fieldNames ...string) *multipart.FileHeader {
	if !IsMultipart(c) {
		return nil
	}
	names := fieldNames
	if len(names) == 0 {
		names = defaultImageFields
	}
	for _, fn := range names {
		if fh, err := c.FormFile(fn); err == nil && fh != nil && fh.Filename != "" {
			return fh
		}
	}
	return nil
}

// CollectSlotFiles mengambil satu file per slot (urutan slot dipertahankan).
// Slot tanpa file bernilai nil.
func CollectSlotFiles(form *multipart.Form, slots []string) []*multipart.FileHeader {
	out := make([]*multipart.FileHeader, len(slots))
	if form == nil || form.File == nil {
		return out
	}
	for i, key := range slots {
		if fhs, ok := form.File[key]; ok {
			for _, fh := range fhs {
				if fh != nil && fh.Filename != "" {
					out[i] = fh
					break
				}
			}
		}
	}
	return out
}

package storage

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ErrNoStorage dikembalikan saat upload diminta tapi STORAGE_DRIVER=none.
var ErrNoStorage = fiber.NewError(fiber.StatusServiceUnavailable, "Storage belum dikonfigurasi")

// ResolveImage menentukan URL final satu slot gambar:
//   - file multipart → upload WebP
//   - data URL base64 → upload WebP bila storage ada, selain itu disimpan apa adanya
//   - URL biasa → dipakai apa adanya
func ResolveImage(ctx context.Context, svc BlobService, dir string, fh *multipart.FileHeader, raw string) (string, error) {
	if fh != nil {
		if svc == nil {
			return "", ErrNoStorage
		}
		return svc.UploadImage(ctx, dir, fh)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" || !IsDataURL(raw) || svc == nil {
		return raw, nil
	}
	mimeType, data, err := DecodeDataURL(raw)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Data URL gambar tidak valid")
	}
	return svc.UploadImageBytes(ctx, dir, "image"+ExtensionForMime(mimeType), data)
}

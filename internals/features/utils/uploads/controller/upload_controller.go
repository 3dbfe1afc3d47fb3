package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "koperasi_backend/internals/helpers"
	"koperasi_backend/internals/helpers/storage"
)

// Folder yang boleh dipakai admin UI; selain itu jatuh ke "misc".
var allowedDirs = map[string]bool{
	"activities": true,
	"staff":      true,
	"misc":       true,
}

type UploadController struct {
	Blob storage.BlobService
}

func NewUploadController(blob storage.BlobService) *UploadController {
	return &UploadController{Blob: blob}
}

// POST /api/uploads/images (multipart: image, opsional dir)
func (ctrl *UploadController) UploadImage(c *fiber.Ctx) error {
	if ctrl.Blob == nil {
		return helper.FromFiberError(c, storage.ErrNoStorage, "")
	}
	fh := storage.GetFormFile(c, "image", "file")
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File gambar wajib diisi (field: image)")
	}

	dir := strings.ToLower(strings.TrimSpace(c.FormValue("dir")))
	if !allowedDirs[dir] {
		dir = "misc"
	}

	url, err := ctrl.Blob.UploadImage(c.UserContext(), dir, fh)
	if err != nil {
		log.Printf("[ERROR] upload image: %v", err)
		return helper.FromFiberError(c, err, "Gagal upload gambar")
	}
	return helper.JsonCreated(c, "Gambar berhasil diupload", fiber.Map{"url": url})
}

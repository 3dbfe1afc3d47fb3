package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"koperasi_backend/internals/features/lembaga/staff/dto"
	"koperasi_backend/internals/features/lembaga/staff/model"
	"koperasi_backend/internals/features/lembaga/staff/repository"
	helper "koperasi_backend/internals/helpers"
	"koperasi_backend/internals/helpers/events"
	"koperasi_backend/internals/helpers/storage"
)

const (
	blobDir      = "staff"
	resourceName = "staff"
)

type StaffController struct {
	Repo   repository.IStaffRepository
	Blob   storage.BlobService
	Events events.Publisher
}

func NewStaffController(repo repository.IStaffRepository, blob storage.BlobService, pub events.Publisher) *StaffController {
	return &StaffController{Repo: repo, Blob: blob, Events: pub}
}

// GET /api/staff?category=pengurus|dewan_pengawas
func (ctrl *StaffController) GetStaff(c *fiber.Ctx) error {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	if category != "" && !model.IsValidCategory(category) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kategori harus pengurus atau dewan_pengawas")
	}

	rows, err := ctrl.Repo.List(c.UserContext(), category)
	if err != nil {
		log.Printf("[ERROR] list staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read staff data")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows))
}

// POST /api/staff (JSON atau multipart dengan file "image")
func (ctrl *StaffController) CreateStaff(c *fiber.Ctx) error {
	var req dto.StaffRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RequestError(c, err)
	}

	ctx := c.UserContext()
	imageURL, err := storage.ResolveImage(ctx, ctrl.Blob, blobDir, storage.GetFormFile(c, "image"), req.ImageURL)
	if err != nil {
		return helper.FromFiberError(c, err, "Failed to upload image")
	}

	m := &model.StaffModel{}
	req.ApplyTo(m, imageURL)
	if err := ctrl.Repo.Create(ctx, m); err != nil {
		if imageURL != req.ImageURL {
			storage.DeleteBestEffort(ctx, ctrl.Blob, imageURL)
		}
		log.Printf("[ERROR] create staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create staff")
	}

	events.Emit(ctx, ctrl.Events, resourceName, events.ActionCreated, m.ID.String())
	return helper.JsonCreated(c, "Pengurus berhasil ditambahkan", dto.FromModel(*m))
}

// PUT /api/staff (id di body) atau PUT /api/staff/:id
func (ctrl *StaffController) UpdateStaff(c *fiber.Ctx) error {
	var req dto.StaffRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RequestError(c, err)
	}
	rawID := c.Params("id")
	if strings.TrimSpace(rawID) == "" {
		rawID = req.ID
	}
	id, err := helper.ParseID(rawID)
	if err != nil {
		return helper.FromFiberError(c, err, "ID tidak valid")
	}

	ctx := c.UserContext()
	m, err := ctrl.Repo.GetByID(ctx, id)
	if err != nil {
		return ctrl.lookupError(c, id, err, "Failed to update staff")
	}
	oldImage := ""
	if m.ImageURL != nil {
		oldImage = *m.ImageURL
	}

	fh := storage.GetFormFile(c, "image")
	imageURL := oldImage
	if fh != nil || req.ImageURL != "" || req.RemoveImage {
		if imageURL, err = storage.ResolveImage(ctx, ctrl.Blob, blobDir, fh, req.ImageURL); err != nil {
			return helper.FromFiberError(c, err, "Failed to upload image")
		}
	}

	req.ApplyTo(m, imageURL)
	if err := ctrl.Repo.Update(ctx, m); err != nil {
		if imageURL != oldImage && imageURL != req.ImageURL {
			storage.DeleteBestEffort(ctx, ctrl.Blob, imageURL)
		}
		log.Printf("[ERROR] update staff %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update staff")
	}

	if oldImage != "" && oldImage != imageURL {
		storage.DeleteBestEffort(ctx, ctrl.Blob, oldImage)
	}
	events.Emit(ctx, ctrl.Events, resourceName, events.ActionUpdated, id.String())
	return helper.JsonUpdated(c, "Pengurus berhasil diperbarui", dto.FromModel(*m))
}

// DELETE /api/staff?id= atau DELETE /api/staff/:id
func (ctrl *StaffController) DeleteStaff(c *fiber.Ctx) error {
	id, err := helper.ResolveID(c)
	if err != nil {
		return helper.FromFiberError(c, err, "ID tidak valid")
	}

	ctx := c.UserContext()
	m, err := ctrl.Repo.GetByID(ctx, id)
	if err != nil {
		return ctrl.lookupError(c, id, err, "Failed to delete staff")
	}
	if err := ctrl.Repo.Delete(ctx, id); err != nil {
		return ctrl.lookupError(c, id, err, "Failed to delete staff")
	}

	if m.ImageURL != nil {
		storage.DeleteBestEffort(ctx, ctrl.Blob, *m.ImageURL)
	}
	events.Emit(ctx, ctrl.Events, resourceName, events.ActionDeleted, id.String())
	return helper.JsonDeleted(c, "Pengurus berhasil dihapus", fiber.Map{"id": id})
}

func (ctrl *StaffController) lookupError(c *fiber.Ctx, id uuid.UUID, err error, fallback string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Data pengurus tidak ditemukan")
	}
	log.Printf("[ERROR] staff %s: %v", id, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
}

package controller

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"koperasi_backend/internals/features/home/activities/dto"
	"koperasi_backend/internals/features/home/activities/model"
	"koperasi_backend/internals/features/home/activities/repository"
	helper "koperasi_backend/internals/helpers"
	"koperasi_backend/internals/helpers/events"
	"koperasi_backend/internals/helpers/storage"
)

const (
	blobDir      = "activities"
	resourceName = "activity"
)

type ActivityController struct {
	Repo   repository.IActivityRepository
	Blob   storage.BlobService
	Events events.Publisher
}

func NewActivityController(repo repository.IActivityRepository, blob storage.BlobService, pub events.Publisher) *ActivityController {
	return &ActivityController{Repo: repo, Blob: blob, Events: pub}
}

// =============================
// 📄 GET /api/activities
// =============================
func (ctrl *ActivityController) GetAllActivities(c *fiber.Ctx) error {
	rows, err := ctrl.Repo.List(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] list activities: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read activities")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows))
}

// =============================
// 🔍 GET /api/activities/:id
// =============================
func (ctrl *ActivityController) GetActivityByID(c *fiber.Ctx) error {
	id, err := helper.ResolveID(c)
	if err != nil {
		return helper.FromFiberError(c, err, "ID tidak valid")
	}
	m, err := ctrl.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
		}
		log.Printf("[ERROR] get activity %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read activity")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*m))
}

// =============================
// ➕ POST /api/activities
// =============================
func (ctrl *ActivityController) CreateActivity(c *fiber.Ctx) error {
	var req dto.ActivityRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RequestError(c, err)
	}

	ctx := c.UserContext()
	images, uploaded, err := ctrl.resolveImages(ctx, c, &req)
	if err != nil {
		return helper.FromFiberError(c, err, "Failed to upload image")
	}

	m, err := req.ToModel(images)
	if err != nil {
		storage.DeleteBestEffort(ctx, ctrl.Blob, uploaded...)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.Repo.Create(ctx, m); err != nil {
		storage.DeleteBestEffort(ctx, ctrl.Blob, uploaded...)
		log.Printf("[ERROR] create activity: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add activity")
	}

	events.Emit(ctx, ctrl.Events, resourceName, events.ActionCreated, m.ID.String())
	return helper.JsonCreated(c, "Kegiatan berhasil ditambahkan", dto.FromModel(*m))
}

// =============================
// 🔄 PUT /api/activities/:id
// =============================
func (ctrl *ActivityController) UpdateActivity(c *fiber.Ctx) error {
	id, err := helper.ResolveID(c)
	if err != nil {
		return helper.FromFiberError(c, err, "ID tidak valid")
	}
	var req dto.ActivityRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RequestError(c, err)
	}

	ctx := c.UserContext()
	m, err := ctrl.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
		}
		log.Printf("[ERROR] get activity %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update activity")
	}
	oldImages := append([]string(nil), m.Images...)

	images, uploaded, err := ctrl.resolveImages(ctx, c, &req)
	if err != nil {
		return helper.FromFiberError(c, err, "Failed to upload image")
	}
	if err := req.ApplyTo(m, images); err != nil {
		storage.DeleteBestEffort(ctx, ctrl.Blob, uploaded...)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.Repo.Update(ctx, m); err != nil {
		storage.DeleteBestEffort(ctx, ctrl.Blob, uploaded...)
		log.Printf("[ERROR] update activity %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update activity")
	}
	m.UpdatedAt = time.Now()

	storage.DeleteBestEffort(ctx, ctrl.Blob, removedImages(oldImages, m.Images)...)
	events.Emit(ctx, ctrl.Events, resourceName, events.ActionUpdated, m.ID.String())
	return helper.JsonUpdated(c, "Kegiatan berhasil diperbarui", dto.FromModel(*m))
}

// =============================
// 🗑️ DELETE /api/activities/:id  |  /api/activities?id=
// =============================
func (ctrl *ActivityController) DeleteActivity(c *fiber.Ctx) error {
	id, err := helper.ResolveID(c)
	if err != nil {
		return helper.FromFiberError(c, err, "ID tidak valid")
	}

	ctx := c.UserContext()
	m, err := ctrl.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
		}
		log.Printf("[ERROR] get activity %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete activity")
	}

	if err := ctrl.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
		}
		log.Printf("[ERROR] delete activity %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete activity")
	}

	storage.DeleteBestEffort(ctx, ctrl.Blob, m.Images...)
	events.Emit(ctx, ctrl.Events, resourceName, events.ActionDeleted, id.String())
	return helper.JsonDeleted(c, "Kegiatan berhasil dihapus", fiber.Map{"id": id})
}

/* =============================
   Helpers
============================= */

// resolveImages mengembalikan URL final per slot dan URL yang baru di-upload
// (untuk dibersihkan bila penyimpanan ke DB gagal).
func (ctrl *ActivityController) resolveImages(ctx context.Context, c *fiber.Ctx, req *dto.ActivityRequest) ([]string, []string, error) {
	files := make([]*multipart.FileHeader, len(dto.ImageFileFields))
	if storage.IsMultipart(c) {
		if form, err := c.MultipartForm(); err == nil {
			files = storage.CollectSlotFiles(form, dto.ImageFileFields)
		}
	}

	slots := req.ImageSlots()
	images := make([]string, 0, model.MaxActivityImages)
	var uploaded []string
	for i := range slots {
		url, err := storage.ResolveImage(ctx, ctrl.Blob, blobDir, files[i], slots[i])
		if err != nil {
			storage.DeleteBestEffort(ctx, ctrl.Blob, uploaded...)
			return nil, nil, err
		}
		if url != "" && url != strings.TrimSpace(slots[i]) {
			uploaded = append(uploaded, url)
		}
		images = append(images, url)
	}
	return images, uploaded, nil
}

func removedImages(before, after []string) []string {
	keep := make(map[string]struct{}, len(after))
	for _, u := range after {
		keep[u] = struct{}{}
	}
	var out []string
	for _, u := range before {
		if _, ok := keep[u]; !ok {
			out = append(out, u)
		}
	}
	return out
}

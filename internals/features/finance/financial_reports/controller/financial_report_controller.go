package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"koperasi_backend/internals/features/finance/financial_reports/dto"
	"koperasi_backend/internals/features/finance/financial_reports/model"
	"koperasi_backend/internals/features/finance/financial_reports/repository"
	helper "koperasi_backend/internals/helpers"
	"koperasi_backend/internals/helpers/dbtime"
	"koperasi_backend/internals/helpers/events"
	"koperasi_backend/internals/helpers/storage"
)

const (
	blobDir      = "financial-reports"
	resourceName = "financial_report"
)

type FinancialReportController struct {
	Repo   repository.IFinancialReportRepository
	Blob   storage.BlobService
	Events events.Publisher
	Now    func() time.Time
}

func NewFinancialReportController(repo repository.IFinancialReportRepository, blob storage.BlobService, pub events.Publisher) *FinancialReportController {
	return &FinancialReportController{Repo: repo, Blob: blob, Events: pub, Now: time.Now}
}

// GET /api/financial → bulan terbaru dulu
func (ctrl *FinancialReportController) GetReports(c *fiber.Ctx) error {
	rows, err := ctrl.Repo.List(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] list financial reports: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read financial reports")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows))
}

// GET /api/financial/:id
func (ctrl *FinancialReportController) GetReportByID(c *fiber.Ctx) error {
	id, err := helper.ResolveID(c)
	if err != nil {
		return helper.FromFiberError(c, err, "ID tidak valid")
	}
	m, err := ctrl.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		log.Printf("[ERROR] get financial report %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read financial reports")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*m))
}

// POST /api/financial (multipart: file, month, uploadedBy)
// Bulan yang sudah punya laporan akan diganti.
func (ctrl *FinancialReportController) UploadReport(c *fiber.Ctx) error {
	if ctrl.Blob == nil {
		return helper.FromFiberError(c, storage.ErrNoStorage, "")
	}

	month := strings.TrimSpace(c.FormValue("month"))
	if !dbtime.IsValidMonth(month) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format bulan harus YYYY-MM")
	}
	fh, err := c.FormFile("file")
	if err != nil || fh == nil || fh.Filename == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "File laporan wajib diunggah")
	}
	fileType := dto.FileTypeFromName(fh.Filename)
	if fileType == "" {
		return helper.JsonError(c, fiber.StatusUnsupportedMediaType, "Hanya file PDF atau Excel (.pdf, .xls, .xlsx, .csv)")
	}
	if fh.Size > storage.MaxFileSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "Ukuran file maksimal 10MB")
	}

	ctx := c.UserContext()
	url, _, err := ctrl.Blob.UploadFile(ctx, blobDir+"/"+month, fh)
	if err != nil {
		return helper.FromFiberError(c, err, "Failed to upload report")
	}

	m := &model.FinancialReportModel{
		Month:      month,
		FileName:   fh.Filename,
		BlobURL:    url,
		FileType:   fileType,
		UploadedAt: ctrl.Now().UTC(),
	}
	if by := strings.TrimSpace(c.FormValue("uploadedBy")); by != "" {
		m.UploadedBy = &by
	}

	prev, err := ctrl.Repo.ReplaceForMonth(ctx, m)
	if err != nil {
		storage.DeleteBestEffort(ctx, ctrl.Blob, url)
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Laporan bulan ini sedang diunggah, coba lagi")
		}
		log.Printf("[ERROR] save financial report %s: %v", month, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload report")
	}

	action := events.ActionCreated
	if prev != nil {
		action = events.ActionUpdated
		if prev.BlobURL != url {
			storage.DeleteBestEffort(ctx, ctrl.Blob, prev.BlobURL)
		}
	}
	events.Emit(ctx, ctrl.Events, resourceName, action, m.ID.String())
	return helper.JsonCreated(c, "Laporan berhasil diunggah", dto.FromModel(*m))
}

// DELETE /api/financial/:id
func (ctrl *FinancialReportController) DeleteReport(c *fiber.Ctx) error {
	id, err := helper.ResolveID(c)
	if err != nil {
		return helper.FromFiberError(c, err, "ID tidak valid")
	}

	ctx := c.UserContext()
	m, err := ctrl.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		log.Printf("[ERROR] get financial report %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete report")
	}

	storage.DeleteBestEffort(ctx, ctrl.Blob, m.BlobURL)

	if err := ctrl.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		log.Printf("[ERROR] delete financial report %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete report")
	}

	events.Emit(ctx, ctrl.Events, resourceName, events.ActionDeleted, id.String())
	return helper.JsonDeleted(c, "Laporan berhasil dihapus", fiber.Map{"id": id})
}

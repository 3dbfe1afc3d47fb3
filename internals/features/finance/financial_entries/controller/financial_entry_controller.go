package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"koperasi_backend/internals/features/finance/financial_entries/dto"
	"koperasi_backend/internals/features/finance/financial_entries/repository"
	helper "koperasi_backend/internals/helpers"
	"koperasi_backend/internals/helpers/dbtime"
	"koperasi_backend/internals/helpers/events"
)

const resourceName = "financial_entry"

type FinancialEntryController struct {
	Repo   repository.IFinancialEntryRepository
	Events events.Publisher
}

func NewFinancialEntryController(repo repository.IFinancialEntryRepository, pub events.Publisher) *FinancialEntryController {
	return &FinancialEntryController{Repo: repo, Events: pub}
}

// filterFromQuery membaca ?month=YYYY-MM (opsional).
func filterFromQuery(c *fiber.Ctx) (string, repository.EntryFilter, error) {
	month := strings.TrimSpace(c.Query("month"))
	if month == "" {
		return "", repository.EntryFilter{}, nil
	}
	start, end, err := dbtime.MonthRange(month)
	if err != nil {
		return "", repository.EntryFilter{}, fiber.NewError(fiber.StatusBadRequest, "Format bulan harus YYYY-MM")
	}
	return month, repository.EntryFilter{From: &start, To: &end}, nil
}

// GET /api/financial/entries?month=
func (ctrl *FinancialEntryController) GetEntries(c *fiber.Ctx) error {
	_, f, err := filterFromQuery(c)
	if err != nil {
		return helper.FromFiberError(c, err, "Invalid month")
	}
	rows, err := ctrl.Repo.List(c.UserContext(), f)
	if err != nil {
		log.Printf("[ERROR] list financial entries: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read financial data")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows))
}

// GET /api/financial/entries/summary?month=
func (ctrl *FinancialEntryController) GetSummary(c *fiber.Ctx) error {
	month, f, err := filterFromQuery(c)
	if err != nil {
		return helper.FromFiberError(c, err, "Invalid month")
	}
	rows, err := ctrl.Repo.List(c.UserContext(), f)
	if err != nil {
		log.Printf("[ERROR] summary financial entries: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read financial data")
	}
	return helper.JsonOK(c, "ok", dto.Summarize(month, rows))
}

// POST /api/financial/entries
func (ctrl *FinancialEntryController) CreateEntry(c *fiber.Ctx) error {
	var req dto.FinancialEntryRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RequestError(c, err)
	}
	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := c.UserContext()
	if err := ctrl.Repo.Create(ctx, m); err != nil {
		log.Printf("[ERROR] create financial entry: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add financial data")
	}

	events.Emit(ctx, ctrl.Events, resourceName, events.ActionCreated, m.ID.String())
	return helper.JsonCreated(c, "Data keuangan berhasil ditambahkan", dto.FromModel(*m))
}

// DELETE /api/financial/entries/:id
func (ctrl *FinancialEntryController) DeleteEntry(c *fiber.Ctx) error {
	id, err := helper.ResolveID(c)
	if err != nil {
		return helper.FromFiberError(c, err, "ID tidak valid")
	}
	ctx := c.UserContext()
	if err := ctrl.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data keuangan tidak ditemukan")
		}
		log.Printf("[ERROR] delete financial entry %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete financial data")
	}

	events.Emit(ctx, ctrl.Events, resourceName, events.ActionDeleted, id.String())
	return helper.JsonDeleted(c, "Data keuangan berhasil dihapus", fiber.Map{"id": id})
}

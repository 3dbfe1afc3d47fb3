package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"koperasi_backend/internals/features/home/pencapaian/dto"
	"koperasi_backend/internals/features/home/pencapaian/repository"
	helper "koperasi_backend/internals/helpers"
	"koperasi_backend/internals/helpers/events"
)

type PencapaianController struct {
	Repo   repository.IPencapaianRepository
	Events events.Publisher
	Now    func() time.Time
}

func NewPencapaianController(repo repository.IPencapaianRepository, pub events.Publisher) *PencapaianController {
	return &PencapaianController{Repo: repo, Events: pub, Now: time.Now}
}

// GET /api/pencapaian → record tunggal, atau nilai default bila kosong
func (ctrl *PencapaianController) GetPencapaian(c *fiber.Ctx) error {
	m, err := ctrl.Repo.Get(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] read pencapaian: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read pencapaian")
	}
	if m == nil {
		return helper.JsonOK(c, "default", dto.Default(ctrl.Now().UTC()))
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*m))
}

// POST /api/pencapaian → buat pertama kali, update selanjutnya
func (ctrl *PencapaianController) SavePencapaian(c *fiber.Ctx) error {
	var req dto.PencapaianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if !req.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing required fields")
	}
	if req.TotalMembers < 0 {
		return helper.JsonValidationError(c, map[string]string{"totalMembers": "min"})
	}

	ctx := c.UserContext()
	m, err := ctrl.Repo.Upsert(ctx, req.TotalAssets, req.TotalMembers, ctrl.Now().UTC())
	if err != nil {
		log.Printf("[ERROR] save pencapaian: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save pencapaian")
	}

	events.Emit(ctx, ctrl.Events, "pencapaian", events.ActionUpdated, m.ID.String())
	return helper.JsonOK(c, "Pencapaian berhasil disimpan", dto.FromModel(*m))
}

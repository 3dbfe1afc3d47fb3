package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"koperasi_backend/internals/features/lembaga/cooperative/dto"
	"koperasi_backend/internals/features/lembaga/cooperative/repository"
	helper "koperasi_backend/internals/helpers"
	"koperasi_backend/internals/helpers/events"
)

type CooperativeController struct {
	Repo   repository.ICooperativeRepository
	Events events.Publisher
}

func NewCooperativeController(repo repository.ICooperativeRepository, pub events.Publisher) *CooperativeController {
	return &CooperativeController{Repo: repo, Events: pub}
}

// GET /api/cooperative
func (ctrl *CooperativeController) GetCooperative(c *fiber.Ctx) error {
	m, err := ctrl.Repo.Get(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] read cooperative: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read cooperative data")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

// POST|PUT /api/cooperative → hapus lalu insert ulang
func (ctrl *CooperativeController) SaveCooperative(c *fiber.Ctx) error {
	var req dto.CooperativeRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RequestError(c, err)
	}

	ctx := c.UserContext()
	m := req.ToModel()
	if err := ctrl.Repo.Replace(ctx, m); err != nil {
		log.Printf("[ERROR] save cooperative: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update cooperative data")
	}

	events.Emit(ctx, ctrl.Events, "cooperative", events.ActionUpdated, m.ID.String())
	return helper.JsonOK(c, "Data koperasi berhasil disimpan", dto.FromModel(m))
}

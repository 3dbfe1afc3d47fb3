package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"koperasi_backend/internals/features/lembaga/members/dto"
	"koperasi_backend/internals/features/lembaga/members/model"
	"koperasi_backend/internals/features/lembaga/members/repository"
	helper "koperasi_backend/internals/helpers"
	"koperasi_backend/internals/helpers/events"
)

const resourceName = "member"

type MemberController struct {
	Repo   repository.IMemberRepository
	Events events.Publisher
}

func NewMemberController(repo repository.IMemberRepository, pub events.Publisher) *MemberController {
	return &MemberController{Repo: repo, Events: pub}
}

func (ctrl *MemberController) GetMembers(c *fiber.Ctx) error {
	rows, err := ctrl.Repo.List(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] list members: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read members")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows))
}

func (ctrl *MemberController) GetMemberByID(c *fiber.Ctx) error {
	id, err := helper.ResolveID(c)
	if err != nil {
		return helper.FromFiberError(c, err, "ID tidak valid")
	}
	m, err := ctrl.Repo.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		log.Printf("[ERROR] get member %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read members")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(*m))
}

func (ctrl *MemberController) CreateMember(c *fiber.Ctx) error {
	var req dto.MemberRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RequestError(c, err)
	}

	m := &model.MemberModel{}
	if err := req.ApplyTo(m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	ctx := c.UserContext()
	if err := ctrl.Repo.Create(ctx, m); err != nil {
		log.Printf("[ERROR] create member: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add member")
	}

	events.Emit(ctx, ctrl.Events, resourceName, events.ActionCreated, m.ID.String())
	return helper.JsonCreated(c, "Anggota berhasil ditambahkan", dto.FromModel(*m))
}

func (ctrl *MemberController) UpdateMember(c *fiber.Ctx) error {
	id, err := helper.ResolveID(c)
	if err != nil {
		return helper.FromFiberError(c, err, "ID tidak valid")
	}
	var req dto.MemberRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RequestError(c, err)
	}

	m := &model.MemberModel{ID: id}
	if err := req.ApplyTo(m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	ctx := c.UserContext()
	if err := ctrl.Repo.Update(ctx, m); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		log.Printf("[ERROR] update member %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update member")
	}

	events.Emit(ctx, ctrl.Events, resourceName, events.ActionUpdated, id.String())
	return helper.JsonUpdated(c, "Anggota berhasil diperbarui", dto.FromModel(*m))
}

// DELETE /api/members/:id → hapus permanen di DB
func (ctrl *MemberController) DeleteMember(c *fiber.Ctx) error {
	id, err := helper.ResolveID(c)
	if err != nil {
		return helper.FromFiberError(c, err, "ID tidak valid")
	}
	ctx := c.UserContext()
	if err := ctrl.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		log.Printf("[ERROR] delete member %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete member")
	}

	events.Emit(ctx, ctrl.Events, resourceName, events.ActionDeleted, id.String())
	return helper.JsonDeleted(c, "Anggota berhasil dihapus", fiber.Map{"id": id})
}

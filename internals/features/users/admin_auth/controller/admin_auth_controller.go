package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"koperasi_backend/internals/features/users/admin_auth/dto"
	"koperasi_backend/internals/features/users/admin_auth/service"
	helper "koperasi_backend/internals/helpers"
	helperAuth "koperasi_backend/internals/helpers/auth"
)

type AdminAuthController struct {
	Passwords *service.PasswordService
	Secret    string
	Now       func() time.Time
}

func NewAdminAuthController(passwords *service.PasswordService, secret string) *AdminAuthController {
	return &AdminAuthController{Passwords: passwords, Secret: secret, Now: time.Now}
}

// POST /api/admin/login
func (ctrl *AdminAuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RequestError(c, err)
	}

	if err := ctrl.Passwords.Verify(c.UserContext(), req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Password salah")
		case errors.Is(err, service.ErrNotSeeded):
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Admin belum dikonfigurasi")
		default:
			log.Printf("[ERROR] verify admin password: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify credential")
		}
	}

	token, exp, err := helperAuth.IssueAdminToken(ctrl.Secret, ctrl.Now())
	if err != nil {
		log.Printf("[ERROR] issue admin token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{Token: token, ExpiresAt: exp})
}

// GET /api/admin/me (di belakang AdminGuard wajib)
func (ctrl *AdminAuthController) Me(c *fiber.Ctx) error {
	raw, _ := c.Locals(helperAuth.LocRawToken).(string)
	claims, err := helperAuth.ParseAdminToken(ctrl.Secret, raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	resp := dto.MeResponse{Role: claims.Role}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time
	}
	return helper.JsonOK(c, "ok", resp)
}

// PUT /api/admin/password
func (ctrl *AdminAuthController) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RequestError(c, err)
	}

	if err := ctrl.Passwords.Change(c.UserContext(), req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
		case errors.Is(err, service.ErrNotSeeded):
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Admin belum dikonfigurasi")
		default:
			log.Printf("[ERROR] change admin password: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
		}
	}
	return helper.JsonUpdated(c, "Password changed successfully", nil)
}

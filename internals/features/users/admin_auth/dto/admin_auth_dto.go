package dto

import (
	"strings"
	"time"
)

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=72"`
}

func (r *ChangePasswordRequest) Normalize() {
	r.NewPassword = strings.TrimSpace(r.NewPassword)
}

type MeResponse struct {
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

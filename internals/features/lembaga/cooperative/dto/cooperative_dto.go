package dto

import (
	"strings"

	"github.com/google/uuid"

	"koperasi_backend/internals/features/lembaga/cooperative/model"
)

type CooperativeRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required,max=50"`
	Email   string `json:"email" validate:"required,email"`
}

func (r *CooperativeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Address = strings.TrimSpace(r.Address)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *CooperativeRequest) ToModel() *model.CooperativeInfoModel {
	return &model.CooperativeInfoModel{
		Name:    r.Name,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
	}
}

type CooperativeResponse struct {
	ID      *uuid.UUID `json:"id"`
	Name    string     `json:"name"`
	Address string     `json:"address"`
	Phone   string     `json:"phone"`
	Email   string     `json:"email"`
}

func FromModel(m *model.CooperativeInfoModel) CooperativeResponse {
	if m == nil {
		return CooperativeResponse{}
	}
	id := m.ID
	return CooperativeResponse{ID: &id, Name: m.Name, Address: m.Address, Phone: m.Phone, Email: m.Email}
}

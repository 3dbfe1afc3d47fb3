package dto

import (
	"strings"

	"github.com/google/uuid"

	"koperasi_backend/internals/features/lembaga/staff/model"
)

type StaffRequest struct {
	ID       string `json:"id" form:"id"` // hanya dipakai PUT tanpa :id
	Name     string `json:"name" form:"name" validate:"required,max=150"`
	Position string `json:"position" form:"position" validate:"required,max=150"`
	Category string `json:"category" form:"category" validate:"required,oneof=pengurus dewan_pengawas"`
	ImageURL string `json:"imageUrl" form:"imageUrl"`
	// RemoveImage: PUT tanpa imageUrl mempertahankan foto lama kecuali flag ini true.
	RemoveImage bool `json:"removeImage" form:"removeImage"`
}

func (r *StaffRequest) Normalize() {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.Position = strings.TrimSpace(r.Position)
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	r.ImageURL = strings.TrimSpace(r.ImageURL)
}

func (r *StaffRequest) ApplyTo(m *model.StaffModel, imageURL string) {
	m.Name = r.Name
	m.Position = r.Position
	m.Category = r.Category
	if imageURL == "" {
		m.ImageURL = nil
	} else {
		m.ImageURL = &imageURL
	}
}

type StaffResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Position string    `json:"position"`
	Category string    `json:"category"`
	ImageURL *string   `json:"imageUrl"`
}

func FromModel(m model.StaffModel) StaffResponse {
	return StaffResponse{
		ID:       m.ID,
		Name:     m.Name,
		Position: m.Position,
		Category: m.Category,
		ImageURL: m.ImageURL,
	}
}

func FromModels(list []model.StaffModel) []StaffResponse {
	out := make([]StaffResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}

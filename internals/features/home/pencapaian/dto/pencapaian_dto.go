package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"koperasi_backend/internals/features/home/pencapaian/model"
)

// Nilai tampilan saat belum ada data di DB.
const (
	DefaultTotalAssets  = "Rp 500.000.000"
	DefaultTotalMembers = 150
)

type PencapaianRequest struct {
	TotalAssets  string `json:"totalAssets"`
	TotalMembers int    `json:"totalMembers"`
}

func (r *PencapaianRequest) Normalize() {
	r.TotalAssets = strings.TrimSpace(r.TotalAssets)
}

// Valid: kedua field wajib terisi (angka 0 dianggap kosong).
func (r *PencapaianRequest) Valid() bool {
	return r.TotalAssets != "" && r.TotalMembers != 0
}

type PencapaianResponse struct {
	ID           *uuid.UUID `json:"id"`
	TotalAssets  string     `json:"totalAssets"`
	TotalMembers int        `json:"totalMembers"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func FromModel(m model.PencapaianModel) PencapaianResponse {
	id := m.ID
	return PencapaianResponse{
		ID:           &id,
		TotalAssets:  m.TotalAssets,
		TotalMembers: m.TotalMembers,
		UpdatedAt:    m.UpdatedAt,
	}
}

func Default(now time.Time) PencapaianResponse {
	return PencapaianResponse{
		ID:           nil,
		TotalAssets:  DefaultTotalAssets,
		TotalMembers: DefaultTotalMembers,
		UpdatedAt:    now,
	}
}

package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"koperasi_backend/internals/features/lembaga/members/model"
	"koperasi_backend/internals/helpers/dbtime"
)

type MemberRequest struct {
	Name     string `json:"name" validate:"required,max=150"`
	Address  string `json:"address" validate:"required"`
	JoinDate string `json:"joinDate" validate:"required,datetime=2006-01-02"`
}

func (r *MemberRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Address = strings.TrimSpace(r.Address)
	r.JoinDate = strings.TrimSpace(r.JoinDate)
}

func (r *MemberRequest) ApplyTo(m *model.MemberModel) error {
	d, err := dbtime.ParseDate(r.JoinDate)
	if err != nil {
		return err
	}
	m.Name = r.Name
	m.Address = r.Address
	m.JoinDate = datatypes.Date(d)
	return nil
}

type MemberResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	JoinDate string    `json:"joinDate"`
}

func FromModel(m model.MemberModel) MemberResponse {
	return MemberResponse{
		ID:       m.ID,
		Name:     m.Name,
		Address:  m.Address,
		JoinDate: dbtime.FormatDate(time.Time(m.JoinDate)),
	}
}

func FromModels(list []model.MemberModel) []MemberResponse {
	out := make([]MemberResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}

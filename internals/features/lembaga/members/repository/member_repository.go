package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"koperasi_backend/internals/features/lembaga/members/model"
)

type IMemberRepository interface {
	List(ctx context.Context) ([]model.MemberModel, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.MemberModel, error)
	Create(ctx context.Context, m *model.MemberModel) error
	Update(ctx context.Context, m *model.MemberModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) IMemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) List(ctx context.Context) ([]model.MemberModel, error) {
	var rows []model.MemberModel
	err := r.db.WithContext(ctx).Order("join_date ASC").Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *memberRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.MemberModel, error) {
	var m model.MemberModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *memberRepository) Create(ctx context.Context, m *model.MemberModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *memberRepository) Update(ctx context.Context, m *model.MemberModel) error {
	res := r.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"name":      m.Name,
			"address":   m.Address,
			"join_date": m.JoinDate,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.MemberModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

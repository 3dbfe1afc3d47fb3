package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"koperasi_backend/internals/features/lembaga/staff/model"
)

type IStaffRepository interface {
	// List: category kosong = semua kategori.
	List(ctx context.Context, category string) ([]model.StaffModel, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.StaffModel, error)
	Create(ctx context.Context, m *model.StaffModel) error
	Update(ctx context.Context, m *model.StaffModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type staffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) IStaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) List(ctx context.Context, category string) ([]model.StaffModel, error) {
	q := r.db.WithContext(ctx).Model(&model.StaffModel{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var rows []model.StaffModel
	err := q.Order("category ASC").Order("created_at ASC").Find(&rows).Error
	return rows, err
}

func (r *staffRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.StaffModel, error) {
	var m model.StaffModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *staffRepository) Create(ctx context.Context, m *model.StaffModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *staffRepository) Update(ctx context.Context, m *model.StaffModel) error {
	return r.db.WithContext(ctx).
		Model(&model.StaffModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"name":      m.Name,
			"position":  m.Position,
			"category":  m.Category,
			"image_url": m.ImageURL,
		}).Error
}

func (r *staffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.StaffModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

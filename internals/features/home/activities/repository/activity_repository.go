package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"koperasi_backend/internals/features/home/activities/model"
)

type IActivityRepository interface {
	List(ctx context.Context) ([]model.ActivityModel, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ActivityModel, error)
	Create(ctx context.Context, m *model.ActivityModel) error
	Update(ctx context.Context, m *model.ActivityModel) error
	// Delete mengembalikan gorm.ErrRecordNotFound bila id tidak ada.
	Delete(ctx context.Context, id uuid.UUID) error
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) IActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) List(ctx context.Context) ([]model.ActivityModel, error) {
	var rows []model.ActivityModel
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *activityRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ActivityModel, error) {
	var m model.ActivityModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *activityRepository) Create(ctx context.Context, m *model.ActivityModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *activityRepository) Update(ctx context.Context, m *model.ActivityModel) error {
	return r.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"title":       m.Title,
			"description": m.Description,
			"date":        m.Date,
			"images":      m.Images,
		}).Error
}

func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.ActivityModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"koperasi_backend/internals/features/home/pencapaian/model"
)

type IPencapaianRepository interface {
	// Get mengembalikan (nil, nil) bila belum ada baris.
	Get(ctx context.Context) (*model.PencapaianModel, error)
	// Upsert membuat baris pertama atau memperbarui baris yang ada.
	Upsert(ctx context.Context, totalAssets string, totalMembers int, now time.Time) (*model.PencapaianModel, error)
}

type pencapaianRepository struct {
	db *gorm.DB
}

func NewPencapaianRepository(db *gorm.DB) IPencapaianRepository {
	return &pencapaianRepository{db: db}
}

func (r *pencapaianRepository) Get(ctx context.Context) (*model.PencapaianModel, error) {
	return first(r.db.WithContext(ctx))
}

func first(tx *gorm.DB) (*model.PencapaianModel, error) {
	var m model.PencapaianModel
	err := tx.Order("updated_at DESC").Limit(1).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Upsert memakai ON CONFLICT (singleton): dua POST pertama yang bersamaan tetap menghasilkan satu baris.
func (r *pencapaianRepository) Upsert(ctx context.Context, totalAssets string, totalMembers int, now time.Time) (*model.PencapaianModel, error) {
	m := &model.PencapaianModel{
		Singleton:    true,
		TotalAssets:  totalAssets,
		TotalMembers: totalMembers,
		UpdatedAt:    now,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "singleton"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_assets", "total_members", "updated_at"}),
		}).
		Create(m).Error
	if err != nil {
		return nil, err
	}
	return m, nil
}

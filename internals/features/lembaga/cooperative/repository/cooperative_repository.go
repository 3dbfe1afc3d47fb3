package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"koperasi_backend/internals/features/lembaga/cooperative/model"
	helper "koperasi_backend/internals/helpers"
)

type ICooperativeRepository interface {
	// Get mengembalikan (nil, nil) bila belum diisi.
	Get(ctx context.Context) (*model.CooperativeInfoModel, error)
	// Replace menghapus semua baris lalu insert baru dalam satu transaksi.
	Replace(ctx context.Context, m *model.CooperativeInfoModel) error
}

type cooperativeRepository struct {
	db *gorm.DB
}

func NewCooperativeRepository(db *gorm.DB) ICooperativeRepository {
	return &cooperativeRepository{db: db}
}

func (r *cooperativeRepository) Get(ctx context.Context) (*model.CooperativeInfoModel, error) {
	var m model.CooperativeInfoModel
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(1).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *cooperativeRepository) Replace(ctx context.Context, m *model.CooperativeInfoModel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := helper.XactLock(tx, "cooperative_infos"); err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.CooperativeInfoModel{}).Error; err != nil {
			return err
		}
		return tx.Create(m).Error
	})
}

package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"koperasi_backend/internals/features/users/admin_auth/model"
	helper "koperasi_backend/internals/helpers"
)

type IAdminCredentialRepository interface {
	// Get mengembalikan (nil, nil) bila belum di-seed.
	Get(ctx context.Context) (*model.AdminCredentialModel, error)
	SaveHash(ctx context.Context, hash string, now time.Time) error
}

type adminCredentialRepository struct {
	db *gorm.DB
}

func NewAdminCredentialRepository(db *gorm.DB) IAdminCredentialRepository {
	return &adminCredentialRepository{db: db}
}

func (r *adminCredentialRepository) Get(ctx context.Context) (*model.AdminCredentialModel, error) {
	var m model.AdminCredentialModel
	err := r.db.WithContext(ctx).Order("updated_at DESC").Limit(1).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveHash menimpa hash yang ada atau membuat baris pertama.
func (r *adminCredentialRepository) SaveHash(ctx context.Context, hash string, now time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := helper.XactLock(tx, "admin_credentials"); err != nil {
			return err
		}
		res := tx.Model(&model.AdminCredentialModel{}).
			Where("1 = 1").
			Updates(map[string]any{"password_hash": hash, "updated_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		return tx.Create(&model.AdminCredentialModel{PasswordHash: hash, UpdatedAt: now}).Error
	})
}

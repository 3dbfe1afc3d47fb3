package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"koperasi_backend/internals/features/finance/financial_entries/model"
)

// EntryFilter: rentang [From, To). Nil = tanpa batas.
type EntryFilter struct {
	From *time.Time
	To   *time.Time
}

type IFinancialEntryRepository interface {
	List(ctx context.Context, f EntryFilter) ([]model.FinancialEntryModel, error)
	Create(ctx context.Context, m *model.FinancialEntryModel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type financialEntryRepository struct {
	db *gorm.DB
}

func NewFinancialEntryRepository(db *gorm.DB) IFinancialEntryRepository {
	return &financialEntryRepository{db: db}
}

func (r *financialEntryRepository) List(ctx context.Context, f EntryFilter) ([]model.FinancialEntryModel, error) {
	q := r.db.WithContext(ctx).Model(&model.FinancialEntryModel{})
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date < ?", *f.To)
	}
	var rows []model.FinancialEntryModel
	err := q.Order("date DESC").Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *financialEntryRepository) Create(ctx context.Context, m *model.FinancialEntryModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *financialEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.FinancialEntryModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"koperasi_backend/internals/features/finance/financial_reports/model"
	helper "koperasi_backend/internals/helpers"
)

type IFinancialReportRepository interface {
	List(ctx context.Context) ([]model.FinancialReportModel, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.FinancialReportModel, error)
	// ReplaceForMonth menghapus laporan bulan yang sama (bila ada) lalu insert m,
	// dalam satu transaksi. Laporan lama dikembalikan untuk pembersihan blob.
	ReplaceForMonth(ctx context.Context, m *model.FinancialReportModel) (*model.FinancialReportModel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type financialReportRepository struct {
	db *gorm.DB
}

func NewFinancialReportRepository(db *gorm.DB) IFinancialReportRepository {
	return &financialReportRepository{db: db}
}

func (r *financialReportRepository) List(ctx context.Context) ([]model.FinancialReportModel, error) {
	var rows []model.FinancialReportModel
	err := r.db.WithContext(ctx).Order("month DESC").Find(&rows).Error
	return rows, err
}

func (r *financialReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.FinancialReportModel, error) {
	var m model.FinancialReportModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *financialReportRepository) ReplaceForMonth(ctx context.Context, m *model.FinancialReportModel) (*model.FinancialReportModel, error) {
	var prev *model.FinancialReportModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// serialisasi per bulan, termasuk saat belum ada baris untuk dikunci
		if err := helper.XactLock(tx, "financial_reports:"+m.Month); err != nil {
			return err
		}
		var existing model.FinancialReportModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("month = ?", m.Month).
			Take(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&model.FinancialReportModel{}, "id = ?", existing.ID).Error; err != nil {
				return err
			}
			prev = &existing
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return nil, err
	}
	return prev, nil
}

func (r *financialReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.FinancialReportModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"koperasi_backend/internals/features/finance/financial_entries/model"
	"koperasi_backend/internals/helpers/dbtime"
)

type FinancialEntryRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Category    string `json:"category" validate:"required,oneof=pemasukan pengeluaran"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
	Description string `json:"description" validate:"required"`
}

func (r *FinancialEntryRequest) Normalize() {
	r.Date = strings.TrimSpace(r.Date)
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	r.Description = strings.TrimSpace(r.Description)
}

func (r *FinancialEntryRequest) ToModel() (*model.FinancialEntryModel, error) {
	d, err := dbtime.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &model.FinancialEntryModel{
		Date:        datatypes.Date(d),
		Category:    r.Category,
		Amount:      r.Amount,
		Description: r.Description,
	}, nil
}

type FinancialEntryResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
}

func FromModel(m model.FinancialEntryModel) FinancialEntryResponse {
	return FinancialEntryResponse{
		ID:          m.ID,
		Date:        dbtime.FormatDate(time.Time(m.Date)),
		Category:    m.Category,
		Amount:      m.Amount,
		Description: m.Description,
	}
}

func FromModels(list []model.FinancialEntryModel) []FinancialEntryResponse {
	out := make([]FinancialEntryResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}

type SummaryResponse struct {
	Month        string `json:"month,omitempty"`
	TotalIncome  int64  `json:"totalIncome"`
	TotalExpense int64  `json:"totalExpense"`
	Balance      int64  `json:"balance"`
	Count        int    `json:"count"`
}

// Summarize menjumlahkan pemasukan dan pengeluaran; saldo = pemasukan - pengeluaran.
func Summarize(month string, list []model.FinancialEntryModel) SummaryResponse {
	s := SummaryResponse{Month: month, Count: len(list)}
	for _, m := range list {
		switch m.Category {
		case model.CategoryIncome:
			s.TotalIncome += m.Amount
		case model.CategoryExpense:
			s.TotalExpense += m.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	return s
}

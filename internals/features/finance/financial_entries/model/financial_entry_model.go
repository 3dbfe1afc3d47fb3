package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	CategoryIncome  = "pemasukan"
	CategoryExpense = "pengeluaran"
)

// FinancialEntryModel: catatan kas harian (pemasukan/pengeluaran) dalam rupiah utuh.
type FinancialEntryModel struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Date        datatypes.Date `gorm:"column:date;type:date;not null;index:idx_financial_entries_date" json:"date"`
	Category    string         `gorm:"column:category;type:varchar(20);not null" json:"category"`
	Amount      int64          `gorm:"column:amount;not null;check:chk_financial_entries_amount,amount > 0" json:"amount"`
	Description string         `gorm:"column:description;type:text;not null" json:"description"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (FinancialEntryModel) TableName() string {
	return "financial_entries"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	FileTypePDF   = "pdf"
	FileTypeExcel = "excel"
)

// FinancialReportModel: satu file laporan per bulan (month unik).
type FinancialReportModel struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Month      string    `gorm:"column:month;type:varchar(7);not null;uniqueIndex:uq_financial_reports_month" json:"month"`
	FileName   string    `gorm:"column:file_name;type:varchar(255);not null" json:"file_name"`
	BlobURL    string    `gorm:"column:blob_url;type:text;not null" json:"blob_url"`
	FileType   string    `gorm:"column:file_type;type:varchar(10);not null" json:"file_type"`
	UploadedAt time.Time `gorm:"column:uploaded_at;not null" json:"uploaded_at"`
	UploadedBy *string   `gorm:"column:uploaded_by;type:varchar(150)" json:"uploaded_by"`
}

func (FinancialReportModel) TableName() string {
	return "financial_reports"
}

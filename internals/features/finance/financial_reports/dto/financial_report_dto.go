package dto

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"koperasi_backend/internals/features/finance/financial_reports/model"
)

// FileTypeFromName: .pdf → pdf; .xls/.xlsx/.csv → excel; lainnya "".
func FileTypeFromName(name string) string {
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(name))) {
	case ".pdf":
		return model.FileTypePDF
	case ".xls", ".xlsx", ".csv":
		return model.FileTypeExcel
	default:
		return ""
	}
}

type FinancialReportResponse struct {
	ID         uuid.UUID `json:"id"`
	Month      string    `json:"month"`
	FileName   string    `json:"fileName"`
	BlobURL    string    `json:"blobUrl"`
	FileType   string    `json:"fileType"`
	UploadedAt time.Time `json:"uploadedAt"`
	UploadedBy *string   `json:"uploadedBy"`
}

func FromModel(m model.FinancialReportModel) FinancialReportResponse {
	return FinancialReportResponse{
		ID:         m.ID,
		Month:      m.Month,
		FileName:   m.FileName,
		BlobURL:    m.BlobURL,
		FileType:   m.FileType,
		UploadedAt: m.UploadedAt,
		UploadedBy: m.UploadedBy,
	}
}

func FromModels(list []model.FinancialReportModel) []FinancialReportResponse {
	out := make([]FinancialReportResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}

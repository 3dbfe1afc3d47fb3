package database

import (
	"context"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	financialEntryModel "koperasi_backend/internals/features/finance/financial_entries/model"
	financialReportModel "koperasi_backend/internals/features/finance/financial_reports/model"
	activityModel "koperasi_backend/internals/features/home/activities/model"
	pencapaianModel "koperasi_backend/internals/features/home/pencapaian/model"
	cooperativeModel "koperasi_backend/internals/features/lembaga/cooperative/model"
	memberModel "koperasi_backend/internals/features/lembaga/members/model"
	staffModel "koperasi_backend/internals/features/lembaga/staff/model"
	adminAuthModel "koperasi_backend/internals/features/users/admin_auth/model"

	"koperasi_backend/internals/configs"
	"koperasi_backend/internals/helpers/storage"
)

// Models yang dikelola AutoMigrate.
func Models() []any {
	return []any{
		&activityModel.ActivityModel{},
		&pencapaianModel.PencapaianModel{},
		&cooperativeModel.CooperativeInfoModel{},
		&staffModel.StaffModel{},
		&memberModel.MemberModel{},
		&financialEntryModel.FinancialEntryModel{},
		&financialReportModel.FinancialReportModel{},
		&adminAuthModel.AdminCredentialModel{},
	}
}

// Migrate menjalankan AutoMigrate kecuali DB_AUTO_MIGRATE=false.
func Migrate(db *gorm.DB) error {
	if !configs.GetEnvBool("DB_AUTO_MIGRATE", true) {
		log.Println("[INFO] DB_AUTO_MIGRATE=false, migrasi dilewati")
		return nil
	}
	// gen_random_uuid() butuh pgcrypto di PostgreSQL < 13
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("[WARN] create extension pgcrypto: %v", err)
	}
	if err := dedupePencapaian(db); err != nil {
		return fmt.Errorf("dedupe pencapaian: %w", err)
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Printf("[INFO] AutoMigrate selesai (%d tabel)", len(Models()))
	return nil
}

// Sebelum kolom singleton ada, tabel bisa berisi lebih dari satu baris; sisakan yang terbaru
// supaya unique index uq_pencapaian_singleton bisa dibuat.
func dedupePencapaian(db *gorm.DB) error {
	m := db.Migrator()
	if !m.HasTable(&pencapaianModel.PencapaianModel{}) || m.HasColumn(&pencapaianModel.PencapaianModel{}, "Singleton") {
		return nil
	}
	return db.Exec(`DELETE FROM pencapaian WHERE id NOT IN (SELECT id FROM pencapaian ORDER BY updated_at DESC LIMIT 1)`).Error
}

// Semua kolom yang menyimpan URL blob.
const blobReferenceSQL = `
SELECT unnest(images) AS url FROM activities
UNION
SELECT image_url FROM staff WHERE image_url IS NOT NULL AND image_url <> ''
UNION
SELECT blob_url FROM financial_reports
`

// CollectBlobReferences dipakai orphan reaper untuk tahu URL mana yang masih hidup.
func CollectBlobReferences(db *gorm.DB) storage.ReferenceSource {
	return func(ctx context.Context) (map[string]struct{}, error) {
		var urls []string
		if err := db.WithContext(ctx).Raw(blobReferenceSQL).Scan(&urls).Error; err != nil {
			return nil, fmt.Errorf("collect blob references: %w", err)
		}
		out := make(map[string]struct{}, len(urls))
		for _, u := range urls {
			if u = strings.TrimSpace(u); u != "" {
				out[u] = struct{}{}
			}
		}
		return out, nil
	}
}

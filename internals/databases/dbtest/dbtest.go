// Package dbtest menyiapkan PostgreSQL sungguhan untuk test repository.
// Opt-in: set DB_DSN_TEST=1 dan DB_DSN. Setiap test mendapat schema sendiri
// sehingga paket yang jalan paralel tidak saling menimpa data.
package dbtest

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "koperasi_backend/internals/databases"
)

// Open mengembalikan *gorm.DB dengan search_path ke schema baru yang sudah di-migrate.
// Schema di-drop saat test selesai.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		t.Skip("DB_DSN kosong")
	}

	admin := open(t, dsn)
	schema := "it_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	require.NoError(t, admin.Exec(fmt.Sprintf(`CREATE SCHEMA %q`, schema)).Error)

	db := open(t, withSearchPath(dsn, schema))
	t.Cleanup(func() {
		closeDB(db)
		_ = admin.Exec(fmt.Sprintf(`DROP SCHEMA IF EXISTS %q CASCADE`, schema)).Error
		closeDB(admin)
	})

	t.Setenv("DB_AUTO_MIGRATE", "true")
	require.NoError(t, database.Migrate(db))
	return db
}

func open(t testing.TB, dsn string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: gormLogger.Default.LogMode(gormLogger.Silent)})
	require.NoError(t, err)
	return db
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// public tetap di search_path untuk gen_random_uuid() dari pgcrypto (PostgreSQL < 13).
func withSearchPath(dsn, schema string) string {
	path := schema + ",public"
	if strings.Contains(dsn, "://") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		return dsn + sep + "search_path=" + path
	}
	return dsn + " search_path=" + path
}

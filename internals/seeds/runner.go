package seeds

import (
	"log"
	"path/filepath"

	"gorm.io/gorm"

	cooperative "koperasi_backend/internals/seeds/lembaga/cooperative"
	staff "koperasi_backend/internals/seeds/lembaga/staff"
)

// RunAllSeeds mengisi data awal situs. Seed yang datanya sudah ada dilewati,
// jadi aman dijalankan berulang (DB_SEED=true).
func RunAllSeeds(db *gorm.DB, dir string) {
	//* Lembaga
	if err := cooperative.SeedCooperativeFromJSON(db, filepath.Join(dir, "lembaga/cooperative/data_cooperative.json")); err != nil {
		log.Printf("[WARN] seed cooperative: %v", err)
	}
	if err := staff.SeedStaffFromJSON(db, filepath.Join(dir, "lembaga/staff/data_staff.json")); err != nil {
		log.Printf("[WARN] seed staff: %v", err)
	}
}

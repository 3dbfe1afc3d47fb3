package staff

import (
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"koperasi_backend/internals/features/lembaga/staff/model"
)

type StaffSeed struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Category string `json:"category"`
}

// ParseStaffSeeds membuang entri dengan kategori di luar pengurus/dewan_pengawas.
func ParseStaffSeeds(raw []byte) ([]StaffSeed, error) {
	var seeds []StaffSeed
	if err := sonic.Unmarshal(raw, &seeds); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	out := seeds[:0]
	for _, s := range seeds {
		if s.Name == "" || !model.IsValidCategory(s.Category) {
			log.Printf("⚠️ Seed staff '%s' (%s) tidak valid, lewati...", s.Name, s.Category)
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func SeedStaffFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("baca file: %w", err)
	}
	seeds, err := ParseStaffSeeds(file)
	if err != nil {
		return err
	}

	for _, seed := range seeds {
		var existing model.StaffModel
		if err := db.Where("name = ? AND category = ?", seed.Name, seed.Category).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Staff '%s' sudah ada, lewati...", seed.Name)
			continue
		}

		row := model.StaffModel{Name: seed.Name, Position: seed.Position, Category: seed.Category}
		if err := db.Create(&row).Error; err != nil {
			log.Printf("❌ Gagal insert '%s': %v", seed.Name, err)
		} else {
			log.Printf("✅ Berhasil insert '%s'", seed.Name)
		}
	}
	return nil
}

package cooperative

import (
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"koperasi_backend/internals/features/lembaga/cooperative/model"
)

type CooperativeSeed struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func ParseCooperativeSeed(raw []byte) (CooperativeSeed, error) {
	var seed CooperativeSeed
	if err := sonic.Unmarshal(raw, &seed); err != nil {
		return seed, fmt.Errorf("decode JSON: %w", err)
	}
	if seed.Name == "" {
		return seed, fmt.Errorf("name wajib diisi")
	}
	return seed, nil
}

// SeedCooperativeFromJSON hanya insert bila tabel masih kosong (singleton).
func SeedCooperativeFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("baca file: %w", err)
	}
	seed, err := ParseCooperativeSeed(file)
	if err != nil {
		return err
	}

	var count int64
	if err := db.Model(&model.CooperativeInfoModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("ℹ️ Info koperasi sudah ada, lewati...")
		return nil
	}

	if err := db.Create(&model.CooperativeInfoModel{
		Name:    seed.Name,
		Address: seed.Address,
		Phone:   seed.Phone,
		Email:   seed.Email,
	}).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	log.Printf("✅ Berhasil insert info koperasi '%s'", seed.Name)
	return nil
}

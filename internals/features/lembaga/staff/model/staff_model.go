package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryPengurus      = "pengurus"
	CategoryDewanPengawas = "dewan_pengawas"
)

func IsValidCategory(s string) bool {
	return s == CategoryPengurus || s == CategoryDewanPengawas
}

type StaffModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(150);not null" json:"name"`
	Position  string    `gorm:"column:position;type:varchar(150);not null" json:"position"`
	Category  string    `gorm:"column:category;type:varchar(20);not null;index:idx_staff_category" json:"category"`
	ImageURL  *string   `gorm:"column:image_url;type:text" json:"image_url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StaffModel) TableName() string {
	return "staff"
}

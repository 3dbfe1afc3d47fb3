package model

import (
	"time"

	"github.com/google/uuid"
)

// CooperativeInfoModel: profil & kontak koperasi (singleton).
type CooperativeInfoModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(200);not null" json:"name"`
	Address   string    `gorm:"column:address;type:text;not null" json:"address"`
	Phone     string    `gorm:"column:phone;type:varchar(50);not null" json:"phone"`
	Email     string    `gorm:"column:email;type:varchar(200);not null" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CooperativeInfoModel) TableName() string {
	return "cooperative_infos"
}

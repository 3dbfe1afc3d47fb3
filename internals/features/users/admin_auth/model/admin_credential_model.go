package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminCredentialModel: satu baris, hash bcrypt password admin.
type AdminCredentialModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(100);not null" json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (AdminCredentialModel) TableName() string {
	return "admin_credentials"
}

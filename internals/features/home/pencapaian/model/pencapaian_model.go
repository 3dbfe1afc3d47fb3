package model

import (
	"time"

	"github.com/google/uuid"
)

// PencapaianModel: satu baris saja; kolom singleton unik menjaga upsert paralel.
type PencapaianModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Singleton    bool      `gorm:"column:singleton;not null;default:true;uniqueIndex:uq_pencapaian_singleton" json:"-"`
	TotalAssets  string    `gorm:"column:total_assets;type:varchar(100);not null" json:"total_assets"`
	TotalMembers int       `gorm:"column:total_members;not null" json:"total_members"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (PencapaianModel) TableName() string {
	return "pencapaian"
}

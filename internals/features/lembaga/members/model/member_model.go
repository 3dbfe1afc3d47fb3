package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MemberModel struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"column:name;type:varchar(150);not null" json:"name"`
	Address   string         `gorm:"column:address;type:text;not null" json:"address"`
	JoinDate  datatypes.Date `gorm:"column:join_date;type:date;not null" json:"join_date"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MemberModel) TableName() string {
	return "members"
}

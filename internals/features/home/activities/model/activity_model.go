package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

const MaxActivityImages = 4

type ActivityModel struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Title       string         `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description string         `gorm:"column:description;type:text;not null" json:"description"`
	Date        datatypes.Date `gorm:"column:date;type:date;not null;index:idx_activities_date" json:"date"`
	Images      pq.StringArray `gorm:"column:images;type:text[];not null;default:'{}'" json:"images"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ActivityModel) TableName() string {
	return "activities"
}

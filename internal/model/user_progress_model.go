package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserProgress struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Type         string         `gorm:"column:type;type:varchar(32);not null"`
	BrukerID     string         `gorm:"column:bruker_id;type:varchar(255);not null;uniqueIndex"`
	RandomOrder  datatypes.JSON `gorm:"column:random_order;not null"`
	CurrentIndex int            `gorm:"column:current_index;not null;default:0"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

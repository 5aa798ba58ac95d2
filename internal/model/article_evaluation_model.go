package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ArticleEvaluation struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Type          string         `gorm:"column:type;type:varchar(32);not null"`
	BrukerID      string         `gorm:"column:bruker_id;type:varchar(255);not null;index"`
	RandomListPos int            `gorm:"column:random_list_pos;not null"`
	DataIdx       int            `gorm:"column:data_idx;not null"`
	ArticleUUID   string         `gorm:"column:uuid;type:varchar(255);not null"`
	Rangeringer   datatypes.JSON `gorm:"column:rangeringer;not null"`
	Kilder        datatypes.JSON `gorm:"column:sammendrag_kilder;not null"`
	Kommentar     string         `gorm:"column:kommentar;type:text"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
}

func (ArticleEvaluation) TableName() string {
	return "article_evaluations"
}

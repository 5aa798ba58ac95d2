package model

import (
	"time"

	"github.com/google/uuid"
)

type SurveyResponse struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Type             string    `gorm:"column:type;type:varchar(32);not null"`
	BrukerID         string    `gorm:"column:bruker_id;type:varchar(255);not null;uniqueIndex"`
	SvarLengde       string    `gorm:"column:svar_lengde;type:text;not null"`
	SvarPresentasjon string    `gorm:"column:svar_presentasjon;type:text;not null"`
	SvarBakgrunn     string    `gorm:"column:svar_bakgrunn;type:text;not null"`
	SvarViktigst     string    `gorm:"column:svar_viktigst;type:text;not null"`
	SvarIrriterende  string    `gorm:"column:svar_irriterende;type:text;not null"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (SurveyResponse) TableName() string {
	return "survey_responses"
}

package dto

import "github.com/google/uuid"

type SubmitSurveyRequest struct {
	BrukerID         string `json:"bruker_id" validate:"required"`
	SvarLengde       string `json:"svar_lengde" validate:"required"`
	SvarPresentasjon string `json:"svar_presentasjon" validate:"required"`
	SvarBakgrunn     string `json:"svar_bakgrunn" validate:"required"`
	SvarViktigst     string `json:"svar_viktigst" validate:"required"`
	SvarIrriterende  string `json:"svar_irriterende" validate:"required"`
}

type SubmitSurveyResponse struct {
	Id uuid.UUID `json:"id"`
}

package mapper

import (
	"github.com/ingunnnaevdal/masterevaluering/internal/entity"
	"github.com/ingunnnaevdal/masterevaluering/internal/model"
)

type SurveyResponseMapper struct{}

func NewSurveyResponseMapper() *SurveyResponseMapper {
	return &SurveyResponseMapper{}
}

func (m *SurveyResponseMapper) ToEntity(s *model.SurveyResponse) *entity.SurveyResponse {
	if s == nil {
		return nil
	}
	return &entity.SurveyResponse{
		Id:               s.Id,
		BrukerID:         s.BrukerID,
		SvarLengde:       s.SvarLengde,
		SvarPresentasjon: s.SvarPresentasjon,
		SvarBakgrunn:     s.SvarBakgrunn,
		SvarViktigst:     s.SvarViktigst,
		SvarIrriterende:  s.SvarIrriterende,
		CreatedAt:        s.CreatedAt,
	}
}

func (m *SurveyResponseMapper) ToModel(s *entity.SurveyResponse) *model.SurveyResponse {
	if s == nil {
		return nil
	}
	return &model.SurveyResponse{
		Id:               s.Id,
		Type:             model.DocTypeUndersokelse,
		BrukerID:         s.BrukerID,
		SvarLengde:       s.SvarLengde,
		SvarPresentasjon: s.SvarPresentasjon,
		SvarBakgrunn:     s.SvarBakgrunn,
		SvarViktigst:     s.SvarViktigst,
		SvarIrriterende:  s.SvarIrriterende,
		CreatedAt:        s.CreatedAt,
	}
}

package service

import (
	"context"

	"github.com/ingunnnaevdal/masterevaluering/internal/dto"
)

// ISessionService answers the one question the client keeps asking: where is
// this user in the flow, and what should be rendered next.
type ISessionService interface {
	State(ctx context.Context, brukerID string) (*dto.SessionStateResponse, error)
}

type sessionService struct {
	surveyService     ISurveyService
	evaluationService IEvaluationService
}

func NewSessionService(surveyService ISurveyService, evaluationService IEvaluationService) ISessionService {
	return &sessionService{
		surveyService:     surveyService,
		evaluationService: evaluationService,
	}
}

func (s *sessionService) State(ctx context.Context, brukerID string) (*dto.SessionStateResponse, error) {
	responded, err := s.surveyService.HasResponded(ctx, brukerID)
	if err != nil {
		return nil, err
	}
	if !responded {
		return &dto.SessionStateResponse{
			State:  dto.StateAwaitingSurvey,
			Survey: s.surveyService.Questions(),
		}, nil
	}

	current, err := s.evaluationService.Current(ctx, brukerID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return &dto.SessionStateResponse{State: dto.StateComplete}, nil
	}
	return &dto.SessionStateResponse{
		State:      dto.StateEvaluating,
		Evaluation: current,
	}, nil
}

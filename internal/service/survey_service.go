package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ingunnnaevdal/masterevaluering/internal/config"
	"github.com/ingunnnaevdal/masterevaluering/internal/dto"
	"github.com/ingunnnaevdal/masterevaluering/internal/entity"
	"github.com/ingunnnaevdal/masterevaluering/internal/pkg/serverutils"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/specification"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/unitofwork"
)

type ISurveyService interface {
	Questions() *dto.IntakeSurveyResponse
	HasResponded(ctx context.Context, brukerID string) (bool, error)
	Submit(ctx context.Context, req *dto.SubmitSurveyRequest) (*dto.SubmitSurveyResponse, error)
}

type surveyService struct {
	uowFactory unitofwork.RepositoryFactory
	questions  []config.IntakeQuestion
}

func NewSurveyService(uowFactory unitofwork.RepositoryFactory, questions []config.IntakeQuestion) ISurveyService {
	return &surveyService{
		uowFactory: uowFactory,
		questions:  questions,
	}
}

func (s *surveyService) Questions() *dto.IntakeSurveyResponse {
	res := &dto.IntakeSurveyResponse{
		Questions: make([]dto.IntakeQuestionResponse, 0, len(s.questions)),
	}
	for _, q := range s.questions {
		res.Questions = append(res.Questions, dto.IntakeQuestionResponse{
			Key:     q.Key,
			Prompt:  q.Prompt,
			Options: q.Options,
		})
	}
	return res
}

func (s *surveyService) HasResponded(ctx context.Context, brukerID string) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.SurveyResponseRepository().FindOne(ctx,
		specification.ByBrukerID{BrukerID: brukerID},
	)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}

func (s *surveyService) Submit(ctx context.Context, req *dto.SubmitSurveyRequest) (*dto.SubmitSurveyResponse, error) {
	if err := s.validateAnswers(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.SurveyResponseRepository().FindOne(ctx,
		specification.ByBrukerID{BrukerID: req.BrukerID},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewConflictError("undersøkelsen er allerede besvart")
	}

	response := entity.SurveyResponse{
		Id:               uuid.New(),
		BrukerID:         req.BrukerID,
		SvarLengde:       req.SvarLengde,
		SvarPresentasjon: req.SvarPresentasjon,
		SvarBakgrunn:     req.SvarBakgrunn,
		SvarViktigst:     req.SvarViktigst,
		SvarIrriterende:  req.SvarIrriterende,
		CreatedAt:        time.Now(),
	}
	if err := uow.SurveyResponseRepository().Create(ctx, &response); err != nil {
		return nil, err
	}

	return &dto.SubmitSurveyResponse{Id: response.Id}, nil
}

// validateAnswers checks every answer against the configured fixed choices.
func (s *surveyService) validateAnswers(req *dto.SubmitSurveyRequest) error {
	answers := map[string]string{
		"svar_lengde":       req.SvarLengde,
		"svar_presentasjon": req.SvarPresentasjon,
		"svar_bakgrunn":     req.SvarBakgrunn,
		"svar_viktigst":     req.SvarViktigst,
		"svar_irriterende":  req.SvarIrriterende,
	}
	for _, q := range s.questions {
		answer, ok := answers[q.Key]
		if !ok {
			continue
		}
		valid := false
		for _, opt := range q.Options {
			if opt == answer {
				valid = true
				break
			}
		}
		if !valid {
			return serverutils.NewBadRequestError(fmt.Sprintf("ugyldig svar for %s", q.Key))
		}
	}
	return nil
}

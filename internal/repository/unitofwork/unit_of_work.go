package unitofwork

import (
	"context"

	"github.com/ingunnnaevdal/masterevaluering/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SurveyResponseRepository() contract.SurveyResponseRepository
	UserProgressRepository() contract.UserProgressRepository
	ArticleEvaluationRepository() contract.ArticleEvaluationRepository
}

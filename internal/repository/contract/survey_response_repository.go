package contract

import (
	"context"

	"github.com/ingunnnaevdal/masterevaluering/internal/entity"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/specification"
)

// SurveyResponseRepository stores the one-time intake questionnaire answers.
// Responses are created once per user and never updated.
type SurveyResponseRepository interface {
	Create(ctx context.Context, response *entity.SurveyResponse) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SurveyResponse, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

package contract

import (
	"context"

	"github.com/ingunnnaevdal/masterevaluering/internal/entity"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/specification"
)

// ArticleEvaluationRepository stores submitted rankings. Records are
// append-only; there is deliberately no update or delete.
type ArticleEvaluationRepository interface {
	Create(ctx context.Context, evaluation *entity.ArticleEvaluation) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ArticleEvaluation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

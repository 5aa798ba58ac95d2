package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/ingunnnaevdal/masterevaluering/internal/entity"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/specification"
)

// UserProgressRepository stores each participant's fixed article permutation
// and their cursor into it.
type UserProgressRepository interface {
	Create(ctx context.Context, progress *entity.UserProgress) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserProgress, error)
	// AdvanceCursor bumps current_index from `from` to `from+1`. The update is
	// conditional on the stored cursor still being `from`, so the cursor can
	// only ever move forward by one.
	AdvanceCursor(ctx context.Context, id uuid.UUID, from int) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

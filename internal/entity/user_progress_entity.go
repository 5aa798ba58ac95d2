package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProgress pins a user's article permutation and their cursor into it.
// RandomOrder is generated exactly once; CurrentIndex only ever grows, by one
// per persisted evaluation.
type UserProgress struct {
	Id           uuid.UUID
	BrukerID     string
	RandomOrder  []int
	CurrentIndex int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// Complete reports whether every article in the permutation has been evaluated.
func (p *UserProgress) Complete() bool {
	return p.CurrentIndex >= len(p.RandomOrder)
}

// CurrentArticleIndex returns the dataset index under the cursor.
func (p *UserProgress) CurrentArticleIndex() int {
	return p.RandomOrder[p.CurrentIndex]
}

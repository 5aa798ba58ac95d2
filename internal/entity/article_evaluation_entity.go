package entity

import (
	"time"

	"github.com/google/uuid"
)

// ArticleEvaluation is one submitted ranking for one (user, article) pair.
// Records are append-only; they are never updated or deleted.
type ArticleEvaluation struct {
	Id            uuid.UUID
	BrukerID      string
	RandomListPos int    // cursor position at submission time
	DataIdx       int    // dataset index of the evaluated article
	ArticleUUID   string // dataset uuid column of the evaluated article
	Rangeringer   map[string]string
	Kilder        []string // summary source labels, in shown order
	Kommentar     string
	CreatedAt     time.Time
}

// Package memory holds per-session ephemeral state that never reaches the
// database.
package memory

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/ingunnnaevdal/masterevaluering/pkg/selector"
)

// SelectionKey identifies one display selection: one user at one cursor
// position. The selection stays stable across re-renders until the
// evaluation for that cursor is persisted.
type SelectionKey struct {
	BrukerID string
	Cursor   int
}

func (k SelectionKey) cacheKey() string {
	return fmt.Sprintf("%s\x00%d", k.BrukerID, k.Cursor)
}

type SelectionRepository struct {
	cache *cache.Cache
}

func NewSelectionRepository() *SelectionRepository {
	// An abandoned session ages out after a day; a submission deletes its
	// entry immediately.
	c := cache.New(24*time.Hour, 1*time.Hour)
	return &SelectionRepository{
		cache: c,
	}
}

func (r *SelectionRepository) Save(key SelectionKey, summaries []selector.Summary) {
	r.cache.Set(key.cacheKey(), summaries, cache.DefaultExpiration)
}

func (r *SelectionRepository) Get(key SelectionKey) ([]selector.Summary, bool) {
	if x, found := r.cache.Get(key.cacheKey()); found {
		return x.([]selector.Summary), true
	}
	return nil, false
}

func (r *SelectionRepository) Delete(key SelectionKey) {
	r.cache.Delete(key.cacheKey())
}

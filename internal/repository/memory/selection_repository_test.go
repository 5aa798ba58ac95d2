package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ingunnnaevdal/masterevaluering/pkg/selector"
)

func TestSelectionRepository(t *testing.T) {
	repo := NewSelectionRepository()
	key := SelectionKey{BrukerID: "alice", Cursor: 0}
	summaries := []selector.Summary{
		{Label: "a", Text: "first"},
		{Label: "b", Text: "second"},
	}

	_, found := repo.Get(key)
	assert.False(t, found)

	repo.Save(key, summaries)

	got, found := repo.Get(key)
	assert.True(t, found)
	assert.Equal(t, summaries, got)

	// Another cursor for the same user is a distinct selection.
	_, found = repo.Get(SelectionKey{BrukerID: "alice", Cursor: 1})
	assert.False(t, found)

	// Another user at the same cursor is a distinct selection.
	_, found = repo.Get(SelectionKey{BrukerID: "bob", Cursor: 0})
	assert.False(t, found)

	repo.Delete(key)
	_, found = repo.Get(key)
	assert.False(t, found)
}

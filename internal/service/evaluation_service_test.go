package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingunnnaevdal/masterevaluering/internal/dto"
	"github.com/ingunnnaevdal/masterevaluering/internal/pkg/serverutils"
	"github.com/ingunnnaevdal/masterevaluering/internal/repository/memory"
	"github.com/ingunnnaevdal/masterevaluering/pkg/dataset"
	"github.com/ingunnnaevdal/masterevaluering/pkg/events"
)

func testDataset(n int) *dataset.Dataset {
	articles := make([]dataset.Article, n)
	for i := range articles {
		articles[i] = dataset.Article{
			UUID:         fmt.Sprintf("uuid-%d", i),
			Title:        fmt.Sprintf("Artikkel %d", i),
			Byline:       "Av testdesken",
			CreationDate: "2024-01-01",
			LeadText:     "Ingress",
			BodyText:     "Brødtekst",
			Summaries: map[string]string{
				"prompt4_a": "prioritert sammendrag a",
				"prompt4_b": "prioritert sammendrag b",
				"prompt_x":  "sammendrag x",
				"prompt_y":  "sammendrag y",
				"prompt_z":  "sammendrag z",
			},
		}
	}
	return &dataset.Dataset{Articles: articles}
}

type evalEnv struct {
	store      *fakeStore
	selections *memory.SelectionRepository
	publisher  *fakePublisher
	svc        IEvaluationService
}

func newEvalEnv(n int, seed int64) *evalEnv {
	store := newFakeStore()
	selections := memory.NewSelectionRepository()
	publisher := &fakePublisher{}
	svc := NewEvaluationService(
		&fakeUowFactory{store: store},
		testDataset(n),
		selections,
		publisher,
		nopLogger{},
		rand.New(rand.NewSource(seed)),
	)
	return &evalEnv{store: store, selections: selections, publisher: publisher, svc: svc}
}

func rankAll(current *dto.CurrentArticleResponse) map[string]string {
	rankings := make(map[string]string, len(current.Summaries))
	for i, s := range current.Summaries {
		rankings[s.Kilde] = RankOptions[i%len(RankOptions)]
	}
	return rankings
}

func TestCurrentCreatesProgressOnce(t *testing.T) {
	ctx := context.Background()
	env := newEvalEnv(10, 42)

	first, err := env.svc.Current(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, 10, first.Total)
	assert.Len(t, first.Summaries, 4)
	assert.Equal(t, RankOptions, first.RankOptions)

	progress := env.store.progress["alice"]
	require.NotNil(t, progress)
	require.Len(t, progress.RandomOrder, 10)
	order := append([]int{}, progress.RandomOrder...)

	// A second call reuses the existing permutation and the cached
	// selection: same article, same summaries in the same order.
	second, err := env.svc.Current(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, order, env.store.progress["alice"].RandomOrder)
	assert.Equal(t, first.Article.UUID, second.Article.UUID)
	require.Equal(t, len(first.Summaries), len(second.Summaries))
	for i := range first.Summaries {
		assert.Equal(t, first.Summaries[i].Kilde, second.Summaries[i].Kilde)
	}
}

func TestCurrentPriorityQuotaInSelection(t *testing.T) {
	ctx := context.Background()
	env := newEvalEnv(5, 7)

	current, err := env.svc.Current(ctx, "alice")
	require.NoError(t, err)

	kilder := map[string]bool{}
	for _, s := range current.Summaries {
		kilder[s.Kilde] = true
	}
	assert.True(t, kilder["prompt4_a"], "priority source a missing: %v", kilder)
	assert.True(t, kilder["prompt4_b"], "priority source b missing: %v", kilder)
}

func TestSubmitAdvancesCursorAndAppendsEvaluation(t *testing.T) {
	ctx := context.Background()
	env := newEvalEnv(10, 1)

	current, err := env.svc.Current(ctx, "alice")
	require.NoError(t, err)

	res, err := env.svc.Submit(ctx, &dto.SubmitEvaluationRequest{
		BrukerID:    "alice",
		Rangeringer: rankAll(current),
		Kommentar:   "godt sammendrag",
	})
	require.NoError(t, err)
	assert.Equal(t, dto.StateEvaluating, res.State)
	assert.Equal(t, 2, res.Position)
	assert.Equal(t, 10, res.Total)

	// Cursor moved by exactly one.
	assert.Equal(t, 1, env.store.progress["alice"].CurrentIndex)

	// Evaluation recorded with cursor position and article identity.
	require.Len(t, env.store.evals, 1)
	eval := env.store.evals[0]
	assert.Equal(t, "alice", eval.BrukerID)
	assert.Equal(t, 0, eval.RandomListPos)
	assert.Equal(t, env.store.progress["alice"].RandomOrder[0], eval.DataIdx)
	assert.Equal(t, current.Article.UUID, eval.ArticleUUID)
	assert.Equal(t, "godt sammendrag", eval.Kommentar)
	assert.Len(t, eval.Kilder, 4)

	// The saved event went out on the bus.
	require.Len(t, env.publisher.messages, 1)
	assert.Equal(t, events.TopicEvaluationSaved, env.publisher.topics[0])
	var saved events.EvaluationSaved
	require.NoError(t, json.Unmarshal(env.publisher.messages[0], &saved))
	assert.Equal(t, "alice", saved.BrukerID)
	assert.Equal(t, 0, saved.CursorPos)

	// The display selection for cursor 0 is discarded after a save.
	_, found := env.selections.Get(memory.SelectionKey{BrukerID: "alice", Cursor: 0})
	assert.False(t, found)

	// The next render moves to the second article.
	next, err := env.svc.Current(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, next.Position)
}

func TestSubmitStoreFailureLeavesCursor(t *testing.T) {
	ctx := context.Background()
	env := newEvalEnv(10, 2)

	current, err := env.svc.Current(ctx, "alice")
	require.NoError(t, err)

	env.store.failEvalCreate = true
	_, err = env.svc.Submit(ctx, &dto.SubmitEvaluationRequest{
		BrukerID:    "alice",
		Rangeringer: rankAll(current),
	})
	require.Error(t, err)

	// Nothing advanced, nothing stored, nothing published.
	assert.Equal(t, 0, env.store.progress["alice"].CurrentIndex)
	assert.Empty(t, env.store.evals)
	assert.Empty(t, env.publisher.messages)

	// The same article and selection are re-presented for resubmission.
	again, err := env.svc.Current(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Position)
	for i := range current.Summaries {
		assert.Equal(t, current.Summaries[i].Kilde, again.Summaries[i].Kilde)
	}

	// Retrying after the store recovers succeeds.
	env.store.failEvalCreate = false
	res, err := env.svc.Submit(ctx, &dto.SubmitEvaluationRequest{
		BrukerID:    "alice",
		Rangeringer: rankAll(current),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Position)
	assert.Equal(t, 1, env.store.progress["alice"].CurrentIndex)
}

func TestSubmitValidation(t *testing.T) {
	ctx := context.Background()
	env := newEvalEnv(10, 3)

	current, err := env.svc.Current(ctx, "alice")
	require.NoError(t, err)

	t.Run("unknown source", func(t *testing.T) {
		rankings := rankAll(current)
		delete(rankings, current.Summaries[0].Kilde)
		rankings["finnes_ikke"] = "Best"
		_, err := env.svc.Submit(ctx, &dto.SubmitEvaluationRequest{BrukerID: "alice", Rangeringer: rankings})
		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("invalid rank value", func(t *testing.T) {
		rankings := rankAll(current)
		rankings[current.Summaries[0].Kilde] = "Middels"
		_, err := env.svc.Submit(ctx, &dto.SubmitEvaluationRequest{BrukerID: "alice", Rangeringer: rankings})
		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("missing rankings", func(t *testing.T) {
		rankings := rankAll(current)
		delete(rankings, current.Summaries[0].Kilde)
		_, err := env.svc.Submit(ctx, &dto.SubmitEvaluationRequest{BrukerID: "alice", Rangeringer: rankings})
		var appErr *serverutils.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("ties are allowed", func(t *testing.T) {
		rankings := map[string]string{}
		for _, s := range current.Summaries {
			rankings[s.Kilde] = "Best"
		}
		_, err := env.svc.Submit(ctx, &dto.SubmitEvaluationRequest{BrukerID: "alice", Rangeringer: rankings})
		assert.NoError(t, err)
	})
}

func TestSubmitWithoutProgress(t *testing.T) {
	env := newEvalEnv(10, 4)
	_, err := env.svc.Submit(context.Background(), &dto.SubmitEvaluationRequest{
		BrukerID:    "nobody",
		Rangeringer: map[string]string{"a": "Best"},
	})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestEvaluationFlowRunsToCompletion(t *testing.T) {
	ctx := context.Background()
	const n = 3
	env := newEvalEnv(n, 5)

	for i := 0; i < n; i++ {
		current, err := env.svc.Current(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, current, "article %d", i)
		assert.Equal(t, i+1, current.Position)

		res, err := env.svc.Submit(ctx, &dto.SubmitEvaluationRequest{
			BrukerID:    "alice",
			Rangeringer: rankAll(current),
		})
		require.NoError(t, err)
		if i == n-1 {
			assert.Equal(t, dto.StateComplete, res.State)
		} else {
			assert.Equal(t, dto.StateEvaluating, res.State)
		}
	}

	// Every evaluation landed, one per cursor position.
	require.Len(t, env.store.evals, n)
	for i, eval := range env.store.evals {
		assert.Equal(t, i, eval.RandomListPos)
	}

	// No further article is rendered.
	current, err := env.svc.Current(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, current)

	// Submitting past the end is a conflict.
	_, err = env.svc.Submit(ctx, &dto.SubmitEvaluationRequest{
		BrukerID:    "alice",
		Rangeringer: map[string]string{"a": "Best"},
	})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestSubmitExpiredSelection(t *testing.T) {
	ctx := context.Background()
	env := newEvalEnv(10, 6)

	current, err := env.svc.Current(ctx, "alice")
	require.NoError(t, err)

	// Simulate a process restart: the ephemeral selection is gone.
	env.selections.Delete(memory.SelectionKey{BrukerID: "alice", Cursor: 0})

	_, err = env.svc.Submit(ctx, &dto.SubmitEvaluationRequest{
		BrukerID:    "alice",
		Rangeringer: rankAll(current),
	})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
	assert.Equal(t, 0, env.store.progress["alice"].CurrentIndex)
}

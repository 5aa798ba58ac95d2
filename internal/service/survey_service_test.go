package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingunnnaevdal/masterevaluering/internal/config"
	"github.com/ingunnnaevdal/masterevaluering/internal/dto"
	"github.com/ingunnnaevdal/masterevaluering/internal/pkg/serverutils"
)

func validSurveyRequest(brukerID string) *dto.SubmitSurveyRequest {
	qs := config.DefaultIntakeQuestions()
	byKey := map[string][]string{}
	for _, q := range qs {
		byKey[q.Key] = q.Options
	}
	return &dto.SubmitSurveyRequest{
		BrukerID:         brukerID,
		SvarLengde:       byKey["svar_lengde"][0],
		SvarPresentasjon: byKey["svar_presentasjon"][1],
		SvarBakgrunn:     byKey["svar_bakgrunn"][0],
		SvarViktigst:     byKey["svar_viktigst"][2],
		SvarIrriterende:  byKey["svar_irriterende"][3],
	}
}

func newSurveyService(store *fakeStore) ISurveyService {
	return NewSurveyService(&fakeUowFactory{store: store}, config.DefaultIntakeQuestions())
}

func TestSurveySubmitOnce(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := newSurveyService(store)

	responded, err := svc.HasResponded(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, responded)

	res, err := svc.Submit(ctx, validSurveyRequest("alice"))
	require.NoError(t, err)
	assert.NotEqual(t, "", res.Id.String())

	// Persisted exactly once, under the right user.
	require.Len(t, store.surveys, 1)
	saved := store.surveys["alice"]
	require.NotNil(t, saved)
	assert.Equal(t, "alice", saved.BrukerID)

	responded, err = svc.HasResponded(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, responded)

	// Re-submitting is a conflict and does not create a second document.
	_, err = svc.Submit(ctx, validSurveyRequest("alice"))
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
	assert.Len(t, store.surveys, 1)
}

func TestSurveySubmitRejectsUnknownOption(t *testing.T) {
	svc := newSurveyService(newFakeStore())

	req := validSurveyRequest("alice")
	req.SvarBakgrunn = "helt uviktig" // not one of the fixed choices

	_, err := svc.Submit(context.Background(), req)
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestSurveyQuestions(t *testing.T) {
	svc := newSurveyService(newFakeStore())

	res := svc.Questions()
	require.Len(t, res.Questions, 5)
	for _, q := range res.Questions {
		assert.NotEmpty(t, q.Key)
		assert.NotEmpty(t, q.Prompt)
		assert.NotEmpty(t, q.Options)
	}
}

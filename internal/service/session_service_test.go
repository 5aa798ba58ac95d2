package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingunnnaevdal/masterevaluering/internal/dto"
)

func TestSessionStateTransitions(t *testing.T) {
	ctx := context.Background()
	env := newEvalEnv(2, 11)
	surveys := newSurveyService(env.store)
	svc := NewSessionService(surveys, env.svc)

	// A fresh user is asked the intake questions first.
	state, err := svc.State(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, dto.StateAwaitingSurvey, state.State)
	require.NotNil(t, state.Survey)
	assert.Len(t, state.Survey.Questions, 5)
	assert.Nil(t, state.Evaluation)

	// Visiting the state endpoint does not start an evaluation.
	assert.Nil(t, env.store.progress["alice"])

	_, err = surveys.Submit(ctx, validSurveyRequest("alice"))
	require.NoError(t, err)

	// With the survey answered the first article is served.
	state, err = svc.State(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, dto.StateEvaluating, state.State)
	require.NotNil(t, state.Evaluation)
	assert.Equal(t, 1, state.Evaluation.Position)
	assert.Nil(t, state.Survey)

	// Evaluate both articles and land in COMPLETE.
	for i := 0; i < 2; i++ {
		current, err := env.svc.Current(ctx, "alice")
		require.NoError(t, err)
		_, err = env.svc.Submit(ctx, &dto.SubmitEvaluationRequest{
			BrukerID:    "alice",
			Rangeringer: rankAll(current),
		})
		require.NoError(t, err)
	}

	state, err = svc.State(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, dto.StateComplete, state.State)
	assert.Nil(t, state.Evaluation)
}

func TestSessionStateIsolatesUsers(t *testing.T) {
	ctx := context.Background()
	env := newEvalEnv(2, 12)
	surveys := newSurveyService(env.store)
	svc := NewSessionService(surveys, env.svc)

	_, err := surveys.Submit(ctx, validSurveyRequest("alice"))
	require.NoError(t, err)

	state, err := svc.State(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, dto.StateEvaluating, state.State)

	// A second user starts from scratch regardless of the first one.
	state, err = svc.State(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, dto.StateAwaitingSurvey, state.State)
}

package service

import (
	"context"
	"errors"
	"quiz_engine_backend/internal/repository"
	"quiz_engine_backend/internal/util"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(store *memStore) *SessionService {
	return NewSessionService(repository.NewMemorySessionRepository(time.Hour), NewStatisticsService(store))
}

// undeletableSessions keeps every session because Delete always fails.
type undeletableSessions struct {
	repository.SessionRepository
}

func (undeletableSessions) Delete(ctx context.Context, id string) error {
	return errors.New("redis: connection pool timeout")
}

func TestSessionServiceFullAttempt(t *testing.T) {
	test := buildTest("Geo", 3, 2)
	store := &memStore{}
	svc := newSessionService(store)
	ctx := context.Background()

	ts, err := svc.Start(ctx, test, "Ann")
	require.NoError(t, err)
	id := ts.ID()

	for {
		q, _, err := svc.Next(ctx, id)
		require.NoError(t, err)
		if q == nil {
			break
		}
		require.NoError(t, svc.Submit(ctx, id, q.ID, correctAnswerID(q)))
	}

	results, recorded, err := svc.Stop(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 100.0, results.Percent)
	assert.Equal(t, "Ann", recorded.StudentName)
	assert.Equal(t, test.ID, recorded.TestID)
	assert.Equal(t, "Geo", recorded.TestTitle)

	require.Len(t, store.results, 1)
	assert.Equal(t, 100.0, store.results[0].ScorePercent)

	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestSessionServiceQuestionOrderSurvivesReload(t *testing.T) {
	test := buildTest("Geo", 4, 1)
	svc := newSessionService(&memStore{})
	ctx := context.Background()

	ts, err := svc.Start(ctx, test, "")
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", ts.StudentName())

	order := make([]string, 0, 4)
	for _, q := range ts.Test().Questions {
		order = append(order, q.ID)
	}

	for i := 0; i < 4; i++ {
		q, _, err := svc.Next(ctx, ts.ID())
		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, order[i], q.ID)
	}
}

func TestSessionServiceStopEarly(t *testing.T) {
	svc := newSessionService(&memStore{})
	ctx := context.Background()

	ts, err := svc.Start(ctx, buildTest("Geo", 2, 1), "Bo")
	require.NoError(t, err)
	q, _, err := svc.Next(ctx, ts.ID())
	require.NoError(t, err)
	require.NoError(t, svc.Submit(ctx, ts.ID(), q.ID, correctAnswerID(q)))

	results, _, err := svc.Stop(ctx, ts.ID())
	require.NoError(t, err)
	assert.Equal(t, 50.0, results.Percent)
}

func TestSessionServiceKeepsSessionWhenRecordingFails(t *testing.T) {
	store := &memStore{appendErr: &util.DataAccessError{Op: "save statistics", Err: errors.New("disk full")}}
	svc := newSessionService(store)
	ctx := context.Background()

	ts, err := svc.Start(ctx, buildTest("Geo", 1, 1), "Ann")
	require.NoError(t, err)

	_, _, err = svc.Stop(ctx, ts.ID())
	require.ErrorIs(t, err, util.ErrDataAccess)

	_, err = svc.Get(ctx, ts.ID())
	assert.NoError(t, err)
}

func TestSessionServiceRejectsInvalidTest(t *testing.T) {
	svc := newSessionService(&memStore{})

	_, err := svc.Start(context.Background(), buildTest("Empty", 0, 0), "Ann")
	assert.ErrorIs(t, err, util.ErrInvalidTest)
}

func TestSessionServiceUnknownSession(t *testing.T) {
	svc := newSessionService(&memStore{})
	ctx := context.Background()

	_, _, err := svc.Next(ctx, "nope")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
	assert.ErrorIs(t, svc.Submit(ctx, "nope", "q", "a"), util.ErrSessionNotFound)
	_, _, err = svc.Stop(ctx, "nope")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestSessionServiceConcurrentStopRecordsOnce(t *testing.T) {
	store := &memStore{}
	svc := newSessionService(store)
	ctx := context.Background()

	ts, err := svc.Start(ctx, buildTest("Geo", 3, 2), "Ann")
	require.NoError(t, err)

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = svc.Stop(ctx, ts.ID())
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, util.ErrSessionNotFound)
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, store.results, 1)
}

func TestSessionServiceSubmitRacingStopNeverResurrects(t *testing.T) {
	store := &memStore{}
	svc := newSessionService(store)
	ctx := context.Background()

	ts, err := svc.Start(ctx, buildTest("Geo", 2, 2), "Ann")
	require.NoError(t, err)
	q, _, err := svc.Next(ctx, ts.ID())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = svc.Submit(ctx, ts.ID(), q.ID, correctAnswerID(q))
		}()
		go func() {
			defer wg.Done()
			_, _, _ = svc.Next(ctx, ts.ID())
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _, _ = svc.Stop(ctx, ts.ID())
	}()
	wg.Wait()

	_, _, _ = svc.Stop(ctx, ts.ID())

	_, err = svc.Get(ctx, ts.ID())
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
	assert.Len(t, store.results, 1)
}

func TestSessionServiceStoppedSessionIsNotResumed(t *testing.T) {
	store := &memStore{}
	svc := NewSessionService(undeletableSessions{repository.NewMemorySessionRepository(time.Hour)}, NewStatisticsService(store))
	ctx := context.Background()

	ts, err := svc.Start(ctx, buildTest("Geo", 1, 1), "Ann")
	require.NoError(t, err)

	_, _, err = svc.Stop(ctx, ts.ID())
	require.NoError(t, err)

	_, _, err = svc.Stop(ctx, ts.ID())
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
	assert.ErrorIs(t, svc.Submit(ctx, ts.ID(), "q", "a"), util.ErrSessionNotFound)
	_, err = svc.Get(ctx, ts.ID())
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	assert.Len(t, store.results, 1)
	assert.Empty(t, svc.locks)
}

package repository

import (
	"context"
	"quiz_engine_backend/internal/model"
	"quiz_engine_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newState(id string) *model.SessionState {
	return &model.SessionState{
		ID:          id,
		StudentName: "Ann",
		Test:        sampleTests()[0],
		Cursor:      -1,
		Answers:     map[string]string{},
	}
}

func TestMemorySessionRepositorySaveFind(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)
	ctx := context.Background()
	state := newState("s1")

	require.NoError(t, repo.Save(ctx, state))

	found, err := repo.Find(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", found.StudentName)
	assert.Equal(t, state.Test.ID, found.Test.ID)

	// stored copies are isolated from callers
	state.Answers["q"] = "a"
	found.Cursor = 5
	again, err := repo.Find(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, again.Answers)
	assert.Equal(t, -1, again.Cursor)
}

func TestMemorySessionRepositoryUnknownID(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)

	_, err := repo.Find(context.Background(), "nope")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestMemorySessionRepositoryExpiry(t *testing.T) {
	repo := NewMemorySessionRepository(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newState("old")))

	now = now.Add(30 * time.Second)
	_, err := repo.Find(ctx, "old")
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = repo.Find(ctx, "old")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	require.NoError(t, repo.Save(ctx, newState("new")))
	assert.Len(t, repo.entries, 1)
}

func TestMemorySessionRepositoryDelete(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, newState("s1")))

	require.NoError(t, repo.Delete(ctx, "s1"))
	_, err := repo.Find(ctx, "s1")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	assert.NoError(t, repo.Delete(ctx, "s1"))
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "quiz:session:abc", sessionKey("abc"))
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"quiz_engine_backend/internal/model"
	"quiz_engine_backend/internal/util"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// SessionRepository keeps in-progress testing sessions between requests.
// Find returns a *util.NotFoundError wrapping util.ErrSessionNotFound for
// unknown or expired ids.
type SessionRepository interface {
	Save(ctx context.Context, state *model.SessionState) error
	Find(ctx context.Context, id string) (*model.SessionState, error)
	Delete(ctx context.Context, id string) error
}

type memoryEntry struct {
	state     *model.SessionState
	expiresAt time.Time
}

// MemorySessionRepository stores deep copies so callers never share state.
type MemorySessionRepository struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (r *MemorySessionRepository) Save(ctx context.Context, state *model.SessionState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, e := range r.entries {
		if now.After(e.expiresAt) {
			delete(r.entries, id)
		}
	}

	r.entries[state.ID] = memoryEntry{
		state:     state.Clone(),
		expiresAt: now.Add(r.ttl),
	}
	return nil
}

func (r *MemorySessionRepository) Find(ctx context.Context, id string) (*model.SessionState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok || r.now().After(e.expiresAt) {
		return nil, util.SessionNotFound(id)
	}
	return e.state.Clone(), nil
}

func (r *MemorySessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, id)
	return nil
}

// RedisSessionRepository stores sessions as JSON with a sliding TTL.
type RedisSessionRepository struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewRedisSessionRepository(rdb *redis.Client, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{Redis: rdb, TTL: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf("quiz:session:%s", id)
}

func (r *RedisSessionRepository) Save(ctx context.Context, state *model.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	if err := r.Redis.Set(ctx, sessionKey(state.ID), data, r.TTL).Err(); err != nil {
		return &util.DataAccessError{Op: "save session", Path: sessionKey(state.ID), Err: err}
	}
	return nil
}

func (r *RedisSessionRepository) Find(ctx context.Context, id string) (*model.SessionState, error) {
	data, err := r.Redis.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, util.SessionNotFound(id)
	}
	if err != nil {
		return nil, &util.DataAccessError{Op: "load session", Path: sessionKey(id), Err: err}
	}

	var state model.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, &util.DataAccessError{Op: "decode session", Path: sessionKey(id), Err: err}
	}
	return &state, nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.Redis.Del(ctx, sessionKey(id)).Err(); err != nil {
		return &util.DataAccessError{Op: "delete session", Path: sessionKey(id), Err: err}
	}
	return nil
}

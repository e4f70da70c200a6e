package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"kerjabantu-service/src/internal/entity"
)

const sessionKeyPrefix = "kerjabantu-storage"

type RedisSessionRepository struct {
	Redis redis.UniversalClient
	TTL   time.Duration
}

func NewRedisSessionRepository(client redis.UniversalClient, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{
		Redis: client,
		TTL:   ttl,
	}
}

func SessionKey(sessionID string) string {
	return fmt.Sprintf("%s:%s", sessionKeyPrefix, sessionID)
}

func (r *RedisSessionRepository) Load(ctx context.Context, sessionID string) (*entity.SessionState, error) {
	data, err := r.Redis.Get(ctx, SessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("repository: load session: %w", err)
	}

	return decodeSession(data)
}

func decodeSession(data []byte) (*entity.SessionState, error) {
	var state entity.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionUnreadable, err)
	}
	return &state, nil
}

func (r *RedisSessionRepository) Save(ctx context.Context, sessionID string, state entity.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("repository: encode session: %w", err)
	}
	if err := r.Redis.Set(ctx, SessionKey(sessionID), data, r.TTL).Err(); err != nil {
		return fmt.Errorf("repository: save session: %w", err)
	}
	return nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.Redis.Del(ctx, SessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("repository: delete session: %w", err)
	}
	return nil
}

// MemorySessionRepository keeps encoded blobs in process memory. It backs the
// service when Redis is disabled.
type MemorySessionRepository struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{blobs: make(map[string][]byte)}
}

func (r *MemorySessionRepository) Load(_ context.Context, sessionID string) (*entity.SessionState, error) {
	r.mu.Lock()
	data, ok := r.blobs[sessionID]
	r.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	return decodeSession(data)
}

func (r *MemorySessionRepository) Save(_ context.Context, sessionID string, state entity.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("repository: encode session: %w", err)
	}
	r.mu.Lock()
	r.blobs[sessionID] = data
	r.mu.Unlock()
	return nil
}

func (r *MemorySessionRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.blobs, sessionID)
	r.mu.Unlock()
	return nil
}

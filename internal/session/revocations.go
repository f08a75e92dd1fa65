package session

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "session:revoked:"

// RedisRevocations stores revoked token ids as keys expiring with the token.
type RedisRevocations struct {
	rdb *redis.Client
}

func NewRedisRevocations(rdb *redis.Client) *RedisRevocations {
	return &RedisRevocations{rdb: rdb}
}

func (r *RedisRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return r.rdb.Set(ctx, keyPrefix+tokenID, 1, ttl).Err()
}

func (r *RedisRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.rdb.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MemoryRevocations is used when no Redis address is configured.
type MemoryRevocations struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

func NewMemoryRevocations(now func() time.Time) *MemoryRevocations {
	if now == nil {
		now = time.Now
	}
	return &MemoryRevocations{expires: make(map[string]time.Time), now: now}
}

func (m *MemoryRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for id, at := range m.expires {
		if !at.After(now) {
			delete(m.expires, id)
		}
	}
	m.expires[tokenID] = now.Add(ttl)
	return nil
}

func (m *MemoryRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	at, ok := m.expires[tokenID]
	return ok && at.After(m.now()), nil
}

var (
	_ Revocations = (*RedisRevocations)(nil)
	_ Revocations = (*MemoryRevocations)(nil)
)

package handoff

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tavolo/internal/domain"
)

// RedisStore keeps each session's pending payload in a single Redis key, so
// the handoff survives a page reload but not a second consumption. The TTL
// reclaims slots of diners who never reach the checkout screen.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func (s *RedisStore) slotKey(sessionID string) string {
	return "handoff:" + sessionID
}

// Write replaces the session's slot with the serialized payload.
func (s *RedisStore) Write(ctx context.Context, sessionID string, payload *domain.OrderPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal handoff payload: %w", err)
	}
	return s.Client.Set(ctx, s.slotKey(sessionID), raw, s.TTL).Err()
}

// TakeOnce reads and atomically clears the slot. An already-empty slot is an
// idempotent (nil, false, nil) outcome, not an error, so a checkout view that
// mounts twice cannot double-consume.
func (s *RedisStore) TakeOnce(ctx context.Context, sessionID string) (*domain.OrderPayload, bool, error) {
	raw, err := s.Client.GetDel(ctx, s.slotKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var payload domain.OrderPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, false, fmt.Errorf("unmarshal handoff payload: %w", err)
	}
	return &payload, true, nil
}

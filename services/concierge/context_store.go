package concierge

import (
	"context"
	"encoding/json"
	"time"

	"hospitality/models"

	"github.com/go-redis/redis/v8"
)

const aiContextPrefix = "ai:ctx:"

// ContextStore persists per-user conversation state between concierge turns.
type ContextStore interface {
	Get(ctx context.Context, userID string) (*models.AIContext, error)
	Set(ctx context.Context, userID string, aiCtx *models.AIContext) error
	Clear(ctx context.Context, userID string) error
}

// RedisContextStore implements ContextStore on Redis with a TTL, so stale
// conversations expire on their own.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisContextStore creates a ContextStore over the given Redis client.
func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, userID string) (*models.AIContext, error) {
	key := aiContextPrefix + userID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.AIContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var aiCtx models.AIContext
	if err := json.Unmarshal([]byte(data), &aiCtx); err != nil {
		return nil, err
	}
	return &aiCtx, nil
}

func (s *RedisContextStore) Set(ctx context.Context, userID string, aiCtx *models.AIContext) error {
	key := aiContextPrefix + userID
	b, err := json.Marshal(aiCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, userID string) error {
	key := aiContextPrefix + userID
	return s.client.Del(ctx, key).Err()
}

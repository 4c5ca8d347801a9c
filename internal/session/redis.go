package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// redisStore is an alternative Store backend for deployments that want
// sessions to survive a process restart. The in-memory store remains the
// default; this backend is selected with SESSION_STORE=redis.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a session store backed by the given Redis client.
// Session expiry piggybacks on Redis key TTLs, refreshed on every Get.
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Save(ctx context.Context, sess *Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	return s.client.Set(ctx, redisKeyPrefix+sess.Token, payload, s.ttl).Err()
}

func (s *redisStore) Get(ctx context.Context, token string) (*Session, error) {
	key := redisKeyPrefix + token
	payload, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("session: decode: %w", err)
	}

	sess.LastSeen = time.Now().UTC()
	updated, err := json.Marshal(&sess)
	if err != nil {
		return nil, fmt.Errorf("session: encode: %w", err)
	}
	if err := s.client.Set(ctx, key, updated, s.ttl).Err(); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *redisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, redisKeyPrefix+token).Err()
}

func (s *redisStore) Close() error {
	return s.client.Close()
}

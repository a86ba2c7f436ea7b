package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionTTL bounds a shift; an operator idle past it must log in again.
const sessionTTL = 8 * time.Hour

// RedisStore keeps register sessions in redis so a register restart does not
// log the operator out mid-shift.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    sessionTTL,
	}
}

func (r *RedisStore) Save(ctx context.Context, registerID string, s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session failed: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(registerID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, registerID string) (Session, error) {
	data, err := r.client.Get(ctx, sessionKey(registerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("redis get failed: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("unmarshal session failed: %w", err)
	}
	return s, nil
}

func (r *RedisStore) Delete(ctx context.Context, registerID string) error {
	if err := r.client.Del(ctx, sessionKey(registerID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func sessionKey(registerID string) string {
	return fmt.Sprintf("session:%s", registerID)
}

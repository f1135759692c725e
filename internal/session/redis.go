package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

type record struct {
	Username string `json:"username"`
	IssuedAt int64  `json:"iat"`
}

func key(id string) string { return fmt.Sprintf("app:sess:%s", id) }

func (s *RedisStore) Create(ctx context.Context, id, username string) error {
	b, _ := json.Marshal(record{Username: username, IssuedAt: time.Now().Unix()})
	return s.rdb.Set(ctx, key(id), b, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (string, error) {
	b, err := s.rdb.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}
	var rec record
	if err := json.Unmarshal(b, &rec); err != nil {
		return "", err
	}
	return rec.Username, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, key(id)).Err()
}

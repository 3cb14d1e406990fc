package redis

import (
	"context"
	"errors"
	"time"

	"formquiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Store keeps JSON records as plain Redis strings.
type Store struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewStore returns a Store; a zero ttl keeps records forever.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, prefix: "formquiz:", ttl: ttl}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, s.ttl).Err()
}

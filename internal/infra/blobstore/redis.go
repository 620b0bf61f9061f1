package blobstore

import (
	"context"
	"errors"

	"campus-canteen/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrBlobNotFound
		}
		return nil, errs.Wrapf(err, "failed to read blob %s", key)
	}
	return data, nil
}

// Put stores without expiry.
func (s *RedisStore) Put(ctx context.Context, key string, data []byte) error {
	if err := s.rdb.Set(ctx, key, data, 0).Err(); err != nil {
		return errs.Wrapf(err, "failed to write blob %s", key)
	}
	return nil
}

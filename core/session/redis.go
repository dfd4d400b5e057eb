package session

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the credential under a single key, shared by every process using that key.
type RedisStore struct {
	rdb *redis.Client
	key string
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(rdb *redis.Client, key string) *RedisStore {
	return &RedisStore{rdb: rdb, key: key}
}

// Credential reads as absent on any redis error, including an unreachable server.
func (s *RedisStore) Credential(ctx context.Context) (Credential, bool) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		return Credential{}, false
	}
	return decode(data)
}

func (s *RedisStore) Save(ctx context.Context, cred Credential) error {
	data, err := encode(cred)
	if err != nil {
		return err
	}
	return errors.Wrap(s.rdb.Set(ctx, s.key, data, 0).Err(), "saving session")
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return errors.Wrap(s.rdb.Del(ctx, s.key).Err(), "clearing session")
}

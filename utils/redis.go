package utils

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenBlacklist хранит отозванные токены до истечения их срока
type TokenBlacklist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type RedisBlacklist struct {
	RDB *redis.Client
}

func NewRedisBlacklist(rdb *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{RDB: rdb}
}

func blacklistKey(token string) string {
	return "blacklist:" + token
}

func (b *RedisBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return b.RDB.Set(ctx, blacklistKey(token), "1", ttl).Err()
}

func (b *RedisBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := b.RDB.Get(ctx, blacklistKey(token)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

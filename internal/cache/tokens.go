package cache

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"CoBag/config"
	"CoBag/storage/redis"
)

const refreshTokenPrefix = "refresh_token"

// SetRefreshToken 缓存 refresh token，TTL 与 token 有效期对齐
func SetRefreshToken(ctx context.Context, userID, refreshToken string) error {
	key := redis.Key(refreshTokenPrefix, userID)
	ttl := time.Duration(config.Cfg.JWTRefreshDays) * 24 * time.Hour

	return redis.Client().Set(ctx, key, refreshToken, ttl).Err()
}

// GetRefreshToken 读取缓存的 refresh token，不存在返回空串
func GetRefreshToken(ctx context.Context, userID string) (string, error) {
	key := redis.Key(refreshTokenPrefix, userID)

	val, err := redis.Client().Get(ctx, key).Result()
	if err == goredis.Nil {
		return "", nil
	}
	return val, err
}

// DeleteRefreshToken 旧 token 换新后作废
func DeleteRefreshToken(ctx context.Context, userID string) error {
	key := redis.Key(refreshTokenPrefix, userID)

	return redis.Client().Del(ctx, key).Err()
}

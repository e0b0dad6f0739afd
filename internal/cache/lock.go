package cache

import (
	"context"
	"time"

	"CoBag/storage/redis"
)

// SetNX 实现的分布式锁 / 幂等标记，多个 worker 消费同一队列时防止重发
const (
	lockPrefix      = "lock"
	processedPrefix = "processed"
)

func TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	fullkey := redis.Key(lockPrefix, key)

	result, err := redis.Client().SetNX(ctx, fullkey, 1, ttl).Result()

	if err != nil {
		return false, err
	}

	return result, err
}

func Unlock(ctx context.Context, key string) error {
	fullkey := redis.Key(lockPrefix, key)

	return redis.Client().Del(ctx, fullkey).Err()
}

// TryMarkProcessed 消息级幂等标记：第一次标记成功返回 true，
// 重复投递（Nack 重回队列后再次消费）返回 false，调用方直接 Ack 跳过。
func TryMarkProcessed(ctx context.Context, messageID string, ttl time.Duration) (bool, error) {
	fullkey := redis.Key(processedPrefix, messageID)

	return redis.Client().SetNX(ctx, fullkey, 1, ttl).Result()
}

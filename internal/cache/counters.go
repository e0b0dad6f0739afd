package cache

import (
	"context"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"CoBag/storage/redis"
)

// 未读消息计数由服务端维护：hash 按用户分桶，field 是 match 的 public_id。
// 原实现把未读数放在客户端本地，需要手工同步事件，这里换成读回执模型。
const unreadPrefix = "unread"

func unreadKey(userID int64) string {
	return redis.Key(unreadPrefix, strconv.FormatInt(userID, 10))
}

// IncrUnread 新消息落库后给收件方加未读
func IncrUnread(ctx context.Context, userID, matchID int64) error {
	field := strconv.FormatInt(matchID, 10)
	return redis.Client().HIncrBy(ctx, unreadKey(userID), field, 1).Err()
}

// ClearUnread 读回执：清掉某个会话的未读
func ClearUnread(ctx context.Context, userID, matchID int64) error {
	field := strconv.FormatInt(matchID, 10)
	return redis.Client().HDel(ctx, unreadKey(userID), field).Err()
}

// UnreadByMatch 按会话返回未读数
func UnreadByMatch(ctx context.Context, userID int64) (map[string]int64, error) {
	raw, err := redis.Client().HGetAll(ctx, unreadKey(userID)).Result()
	if err != nil && err != goredis.Nil {
		return nil, err
	}

	out := make(map[string]int64, len(raw))
	for field, val := range raw {
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			continue
		}
		out[field] = n
	}
	return out, nil
}

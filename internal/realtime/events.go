package realtime

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"CoBag/pkg/logger"
	"CoBag/storage/redis"
)

// Match 行变更的广播通道：Redis pub/sub，按 match 的 public_id 一条 channel。
// fire-and-forget、at-most-once——订阅方断线期间的事件直接丢失，
// 重连后必须重新拉取当前状态，不能只依赖推送。

const channelPrefix = "match"

// MatchEvent 一次 Match 行变更
type MatchEvent struct {
	EventID string `json:"event_id"`
	MatchID int64  `json:"match_id"`
	// Kind proposed / accepted / rejected / checkpoint / completed / message
	Kind       string `json:"kind"`
	Checkpoint string `json:"checkpoint,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

func channelFor(matchID int64) string {
	return redis.Key(channelPrefix, strconv.FormatInt(matchID, 10), "events")
}

// Publish 广播一次变更，失败只记日志不回传——推送是尽力而为的
func Publish(ctx context.Context, matchID int64, kind, checkpoint string) {
	event := MatchEvent{
		EventID:    uuid.NewString(),
		MatchID:    matchID,
		Kind:       kind,
		Checkpoint: checkpoint,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Logger.Error("Failed to marshal match event", zap.Error(err))
		return
	}

	if err := redis.Client().Publish(ctx, channelFor(matchID), payload).Err(); err != nil {
		logger.Logger.Warn("Failed to publish match event",
			zap.Int64("match_id", matchID),
			zap.String("kind", kind),
			zap.Error(err),
		)
	}
}

// Subscribe 订阅一个 match 的变更流，返回事件通道和取消函数
func Subscribe(ctx context.Context, matchID int64) (<-chan MatchEvent, func()) {
	sub := redis.Client().Subscribe(ctx, channelFor(matchID))
	events := make(chan MatchEvent, 16)

	go func() {
		defer close(events)
		for msg := range sub.Channel() {
			var event MatchEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				logger.Logger.Warn("Dropping malformed match event", zap.Error(err))
				continue
			}

			select {
			case events <- event:
			default:
				// 订阅方消费不过来就丢，at-most-once
			}
		}
	}()

	return events, func() { _ = sub.Close() }
}

package schedule

// 提案提醒兜底：正常路径靠提案时投递的延迟消息，
// 延迟交换机不可用（插件缺失、消息丢失）时由这里扫描补投。

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"CoBag/config"
	"CoBag/internal/cache"
	"CoBag/internal/model"
	"CoBag/internal/queue"
	"CoBag/internal/repository"
	"CoBag/pkg/logger"
)

const staleProposalBatchSize = 200

var (
	matchSchedulerOnce sync.Once
	matchSchedulerInst *MatchScheduler
)

type MatchScheduler struct {
	logger *zap.Logger
}

func GetMatchScheduler() *MatchScheduler {
	matchSchedulerOnce.Do(func() {
		matchSchedulerInst = &MatchScheduler{
			logger: logger.Logger,
		}
	})
	return matchSchedulerInst
}

// RemindStaleProposals 给超过响应窗口仍 pending 的提案补发提醒
func (s *MatchScheduler) RemindStaleProposals(ctx context.Context) error {
	cutoff := time.Now().Add(-time.Duration(config.Cfg.ProposalReminderHours) * time.Hour)

	matches, err := repository.ListPendingOlderThan(ctx, cutoff, staleProposalBatchSize)
	if err != nil {
		return fmt.Errorf("failed to list stale proposals: %w", err)
	}
	if len(matches) == 0 {
		return nil
	}

	reminded := 0
	for _, match := range matches {
		// 每个提案只兜底提醒一次，标记放 Redis，与延迟消息路径共享
		lockKey := "stale_reminder:" + strconv.FormatInt(match.PublicID, 10)
		fresh, err := cache.TryMarkProcessed(ctx, lockKey, 7*24*time.Hour)
		if err != nil {
			s.logger.Warn("Failed to check stale reminder mark",
				zap.Int64("match_id", match.PublicID),
				zap.Error(err),
			)
			continue
		}
		if !fresh {
			continue
		}

		if err := queue.PublishMailTask(model.MailTaskMessage{
			Category:    "proposal_reminder",
			MatchID:     match.PublicID,
			RecipientID: match.Counterpart(),
		}); err != nil {
			s.logger.Error("Failed to publish stale proposal reminder",
				zap.Int64("match_id", match.PublicID),
				zap.Error(err),
			)
			continue
		}
		reminded++
	}

	if reminded > 0 {
		s.logger.Info("Stale proposal reminders published",
			zap.Int("count", reminded),
		)
	}
	return nil
}

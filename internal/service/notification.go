package service

import (
	"context"
	"sync"

	"CoBag/internal/cache"
	"CoBag/internal/model/dto"
	"CoBag/internal/repository"
)

var (
	notificationService *NotificationService
	notificationOnce    sync.Once
)

func Notification() *NotificationService {
	notificationOnce.Do(func() {
		notificationService = &NotificationService{}
	})
	return notificationService
}

type NotificationService struct{}

// Summary 通知摘要：待响应的入站提案数 + 服务端维护的未读消息数
func (s *NotificationService) Summary(ctx context.Context, userID int64) (*dto.NotificationSummary, error) {
	pending, err := repository.CountPendingIncoming(ctx, userID)
	if err != nil {
		return nil, err
	}

	byMatch, err := cache.UnreadByMatch(ctx, userID)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, n := range byMatch {
		total += n
	}

	return &dto.NotificationSummary{
		PendingProposals: pending,
		UnreadMessages:   total,
		UnreadByMatch:    byMatch,
	}, nil
}

package repository

import (
	"context"

	"CoBag/internal/model"
	"CoBag/storage/database"
)

// CreateMessage 插入会话消息
func CreateMessage(ctx context.Context, message *model.Message) error {
	return database.DB().WithContext(ctx).Create(message).Error
}

// ListMessagesByMatch 按匹配查询会话消息，游标分页，新的在前
func ListMessagesByMatch(ctx context.Context, matchID int64, cursorID int64, limit int) ([]*model.Message, error) {
	q := database.DB().WithContext(ctx).
		Where("match_id = ?", matchID)

	if cursorID > 0 {
		q = q.Where("id < ?", cursorID)
	}

	var messages []*model.Message
	err := q.Order("id DESC").Limit(limit).Find(&messages).Error
	return messages, err
}

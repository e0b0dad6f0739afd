package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"CoBag/internal/cache"
	"CoBag/internal/model"
	"CoBag/internal/model/dto"
	"CoBag/internal/queue"
	"CoBag/internal/realtime"
	"CoBag/internal/repository"
	"CoBag/pkg/errors"
	"CoBag/pkg/logger"
	"CoBag/pkg/snowflake"
)

var (
	messageService *MessageService
	messageOnce    sync.Once
)

func Message() *MessageService {
	messageOnce.Do(func() {
		messageService = &MessageService{}
	})
	return messageService
}

type MessageService struct{}

const maxMessageLength = 4000

// Send 在匹配会话里发一条消息。
// pending 和 accepted 都允许聊（提案期就能沟通细节），终态后会话只读。
func (s *MessageService) Send(ctx context.Context, actorID, matchPublicID int64, body string) (*dto.MessageData, error) {
	body = strings.TrimSpace(body)
	if body == "" || len(body) > maxMessageLength {
		return nil, errors.InvalidRequest
	}

	match, err := repository.GetMatchByPublicID(ctx, matchPublicID)
	if err != nil {
		return nil, err
	}
	if _, ok := match.RoleOf(actorID); !ok {
		return nil, errors.NotParticipant
	}
	if match.Status.Terminal() {
		return nil, errors.InvalidStatus
	}

	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate message ID: %w", err)
	}

	message := &model.Message{
		PublicID: publicID,
		MatchID:  match.PublicID,
		SenderID: actorID,
		Body:     body,
	}

	if err := repository.CreateMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	recipientID := s.otherParticipant(match, actorID)

	// 未读数是服务端读回执模型的一部分，加失败要记下来
	if err := cache.IncrUnread(ctx, recipientID, match.PublicID); err != nil {
		logger.Logger.Warn("Failed to increment unread counter",
			zap.Int64("user_id", recipientID),
			zap.Int64("match_id", match.PublicID),
			zap.Error(err),
		)
	}

	s.notifyMessage(ctx, match, actorID, recipientID)
	return toMessageData(message), nil
}

func (s *MessageService) otherParticipant(match *model.Match, actorID int64) int64 {
	if actorID == match.SenderID {
		return match.TravelerID
	}
	return match.SenderID
}

func (s *MessageService) notifyMessage(ctx context.Context, match *model.Match, actorID, recipientID int64) {
	senderName := ""
	if sender, err := repository.GetUserByPublicID(ctx, actorID); err == nil {
		senderName = sender.DisplayName
	}

	if err := queue.PublishMailTask(model.MailTaskMessage{
		Category:        "message_created",
		MatchID:         match.PublicID,
		RecipientID:     recipientID,
		CounterpartName: senderName,
	}); err != nil {
		logger.Logger.Warn("Message mail task not published", zap.Error(err))
	}

	realtime.Publish(ctx, match.PublicID, "message", "")
}

// List 会话消息列表，仅参与者可见
func (s *MessageService) List(ctx context.Context, actorID, matchPublicID int64, query dto.MessageQuery) ([]*dto.MessageData, error) {
	match, err := repository.GetMatchByPublicID(ctx, matchPublicID)
	if err != nil {
		return nil, err
	}
	if _, ok := match.RoleOf(actorID); !ok {
		return nil, errors.NotParticipant
	}

	limit, cursor := normalizePage(query.Limit, query.Cursor)
	messages, err := repository.ListMessagesByMatch(ctx, match.PublicID, cursor, limit)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.MessageData, 0, len(messages))
	for _, message := range messages {
		out = append(out, toMessageData(message))
	}
	return out, nil
}

// MarkRead 读回执：清掉当前用户在该会话的未读数
func (s *MessageService) MarkRead(ctx context.Context, actorID, matchPublicID int64) error {
	match, err := repository.GetMatchByPublicID(ctx, matchPublicID)
	if err != nil {
		return err
	}
	if _, ok := match.RoleOf(actorID); !ok {
		return errors.NotParticipant
	}

	return cache.ClearUnread(ctx, actorID, match.PublicID)
}

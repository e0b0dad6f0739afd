package queue

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"CoBag/config"
	"CoBag/internal/model"
	"CoBag/pkg/logger"
	"CoBag/storage/mq"
)

// 通知和事件的出站口。邮件任务、生命周期事件走 topic 交换机，
// 提案超时提醒走延迟交换机，按配置的小时数延迟投递。

// PublishMailTask 投递一封通知邮件任务
func PublishMailTask(task model.MailTaskMessage) error {
	if task.MessageID == "" {
		task.MessageID = uuid.NewString()
	}

	err := mq.PublishMessage(mq.NotificationExchange, mq.RoutingKeyMailPrefix+task.Category, task)
	if err != nil {
		logger.Logger.Error("Failed to publish mail task",
			zap.String("category", task.Category),
			zap.Int64("match_id", task.MatchID),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Mail task published",
		zap.String("message_id", task.MessageID),
		zap.String("category", task.Category),
		zap.Int64("recipient_id", task.RecipientID),
	)
	return nil
}

// PublishMatchEvent 把匹配生命周期事件广播到事件总线
func PublishMatchEvent(eventType string, matchID int64, payload map[string]interface{}) error {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	payload["match_id"] = matchID

	event := model.EventMessage{
		Payload:    payload,
		EventKey:   uuid.NewString(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	err := mq.PublishMessage(mq.EventsExchange, mq.RoutingKeyMatchEvent, event)
	if err != nil {
		logger.Logger.Error("Failed to publish match event",
			zap.String("event_type", eventType),
			zap.Int64("match_id", matchID),
			zap.Error(err),
		)
	}
	return err
}

// PublishProposalReminder 安排一条延迟提醒：提案过了响应窗口仍是 pending 就催一下
func PublishProposalReminder(matchID int64) error {
	delay := time.Duration(config.Cfg.ProposalReminderHours) * time.Hour

	reminder := model.ProposalReminderMessage{
		MessageID:   uuid.NewString(),
		MatchID:     matchID,
		ScheduledAt: time.Now().Add(delay).UTC().Format(time.RFC3339),
	}

	err := mq.PublishDelayedMessage(mq.DelayedExchange, mq.RoutingKeyReminderExpire, delay, reminder)
	if err != nil {
		logger.Logger.Error("Failed to schedule proposal reminder",
			zap.Int64("match_id", matchID),
			zap.Error(err),
		)
		return err
	}

	logger.Logger.Info("Proposal reminder scheduled",
		zap.String("message_id", reminder.MessageID),
		zap.Int64("match_id", matchID),
		zap.Duration("delay", delay),
	)
	return nil
}

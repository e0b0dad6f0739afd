package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"CoBag/internal/cache"
	"CoBag/internal/model"
	"CoBag/internal/repository"
	"CoBag/pkg/logger"
	"CoBag/pkg/mailer"
	"CoBag/pkg/metrics"
	"CoBag/storage/mq"
)

// worker 侧的消费入口。所有 handler 先打幂等标记再处理：
// Nack 重回队列或延迟交换机重复投递时直接 Ack 跳过。

const (
	processedTTL   = 48 * time.Hour
	handlerTimeout = 30 * time.Second
)

// StartAllConsumers 启动全部消费者，每个队列一个 goroutine，阻塞直到 ctx 取消
func StartAllConsumers(ctx context.Context) {
	go runConsumer(ctx, mq.ConsumeOptions{
		Queue:         mq.MailQueue,
		ConsumerTag:   "cobag-mail-worker",
		PrefetchCount: 10,
		Handler:       handleMailTask,
	})

	go runConsumer(ctx, mq.ConsumeOptions{
		Queue:         mq.ReminderQueue,
		ConsumerTag:   "cobag-reminder-worker",
		PrefetchCount: 5,
		Handler:       handleProposalReminder,
	})

	<-ctx.Done()
}

// runConsumer 消费循环断开后退避重连
func runConsumer(ctx context.Context, opts mq.ConsumeOptions) {
	for {
		if err := mq.Consume(opts); err != nil {
			logger.Logger.Error("Consumer stopped",
				zap.String("queue", opts.Queue),
				zap.Error(err),
			)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}

func handleMailTask(body []byte) error {
	var task model.MailTaskMessage
	if err := json.Unmarshal(body, &task); err != nil {
		// 消息体坏了，重投也没用
		logger.Logger.Error("Dropping malformed mail task", zap.Error(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	fresh, err := cache.TryMarkProcessed(ctx, task.MessageID, processedTTL)
	if err != nil {
		return fmt.Errorf("failed to check idempotency mark: %w", err)
	}
	if !fresh {
		logger.Logger.Info("Skipping duplicate mail task",
			zap.String("message_id", task.MessageID),
		)
		return nil
	}

	recipient, err := repository.GetUserByPublicID(ctx, task.RecipientID)
	if err != nil {
		return fmt.Errorf("failed to load mail recipient %d: %w", task.RecipientID, err)
	}
	if recipient.Email == "" {
		logger.Logger.Info("Recipient has no email, skipping mail task",
			zap.Int64("recipient_id", task.RecipientID),
			zap.String("category", task.Category),
		)
		return nil
	}

	mail := buildMail(recipient, task)

	start := time.Now()
	sendErr := mailer.Send(ctx, mail)
	duration := time.Since(start).Seconds()

	status := "success"
	if sendErr != nil {
		status = "failure"
	}
	if m := metrics.GetMetrics(); m != nil {
		m.RecordMailSent(ctx, task.Category, mailer.GetClient().Provider(), status, duration)
	}

	if sendErr != nil {
		return fmt.Errorf("failed to send notification mail: %w", sendErr)
	}

	logger.Logger.Info("Notification mail sent",
		zap.String("message_id", task.MessageID),
		zap.String("category", task.Category),
		zap.Int64("recipient_id", task.RecipientID),
	)
	return nil
}

func handleProposalReminder(body []byte) error {
	var reminder model.ProposalReminderMessage
	if err := json.Unmarshal(body, &reminder); err != nil {
		logger.Logger.Error("Dropping malformed proposal reminder", zap.Error(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	fresh, err := cache.TryMarkProcessed(ctx, reminder.MessageID, processedTTL)
	if err != nil {
		return fmt.Errorf("failed to check idempotency mark: %w", err)
	}
	if !fresh {
		return nil
	}

	match, err := repository.GetMatchByPublicID(ctx, reminder.MatchID)
	if err != nil {
		// 提案已被清理，提醒作废
		logger.Logger.Info("Reminder target match not found, dropping",
			zap.Int64("match_id", reminder.MatchID),
		)
		return nil
	}

	if match.Status != model.MatchStatusPending {
		// 对方已经响应过了，不用催
		return nil
	}

	return PublishMailTask(model.MailTaskMessage{
		Category:    "proposal_reminder",
		MatchID:     match.PublicID,
		RecipientID: match.Counterpart(),
	})
}

// buildMail 按类别渲染通知邮件，正文保持纯文本
func buildMail(recipient *model.User, task model.MailTaskMessage) mailer.Mail {
	var subject, bodyText string

	switch task.Category {
	case "match_proposed":
		subject = "New match proposal on CoBag"
		bodyText = fmt.Sprintf("Hi %s,\n\n%s proposed a match for the route %s.\nOpen CoBag to accept or decline the proposal.",
			recipient.DisplayName, task.CounterpartName, task.RouteDescription)
	case "match_accepted":
		subject = "Your match proposal was accepted"
		bodyText = fmt.Sprintf("Hi %s,\n\n%s accepted your proposal for the route %s.\nYou can now coordinate the handoff in the match conversation.",
			recipient.DisplayName, task.CounterpartName, task.RouteDescription)
	case "match_rejected":
		subject = "Your match proposal was declined"
		bodyText = fmt.Sprintf("Hi %s,\n\n%s declined your proposal for the route %s.\nYou can browse other candidates and propose again.",
			recipient.DisplayName, task.CounterpartName, task.RouteDescription)
	case "match_completed":
		subject = "Your shipment was completed"
		bodyText = fmt.Sprintf("Hi %s,\n\nBoth sides confirmed delivery for the route %s. The match is now complete.\nThank you for using CoBag.",
			recipient.DisplayName, task.RouteDescription)
	case "message_created":
		subject = "New message in your match conversation"
		bodyText = fmt.Sprintf("Hi %s,\n\n%s sent you a message. Open the match conversation on CoBag to read and reply.",
			recipient.DisplayName, task.CounterpartName)
	case "proposal_reminder":
		subject = "A match proposal is still waiting for you"
		bodyText = fmt.Sprintf("Hi %s,\n\nYou have a pending match proposal that has not been answered yet.\nOpen CoBag to accept or decline it.",
			recipient.DisplayName)
	default:
		subject = "CoBag notification"
		bodyText = fmt.Sprintf("Hi %s,\n\nYou have a new notification on CoBag.", recipient.DisplayName)
	}

	return mailer.Mail{
		To:       recipient.Email,
		ToName:   recipient.DisplayName,
		Subject:  subject,
		TextBody: bodyText,
		Category: task.Category,
	}
}

package mq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// 交换机与队列拓扑
const (
	// NotificationExchange 承载所有出站通知邮件任务
	NotificationExchange = "notification.topic"
	// EventsExchange 承载匹配生命周期事件的扇出
	EventsExchange = "events.topic"
	// DelayedExchange 承载延迟投递（提案超时提醒），依赖 x-delayed-message 插件
	DelayedExchange = "scheduler.delayed"

	// MailQueue 邮件 worker 消费的队列
	MailQueue = "mail.tasks"
	// ReminderQueue 提案提醒队列
	ReminderQueue = "match.reminders"

	// 路由键
	RoutingKeyMailPrefix     = "notification.mail."
	RoutingKeyMatchEvent     = "events.match"
	RoutingKeyReminderExpire = "reminder.match.pending"
)

// declareTopology 声明交换机、队列和绑定，幂等
func declareTopology(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open topology channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(NotificationExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare %s: %w", NotificationExchange, err)
	}

	if err := ch.ExchangeDeclare(EventsExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare %s: %w", EventsExchange, err)
	}

	if err := ch.ExchangeDeclare(DelayedExchange, "x-delayed-message", true, false, false, false, amqp.Table{
		"x-delayed-type": "topic",
	}); err != nil {
		return fmt.Errorf("failed to declare %s: %w", DelayedExchange, err)
	}

	if _, err := ch.QueueDeclare(MailQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare %s: %w", MailQueue, err)
	}
	if err := ch.QueueBind(MailQueue, RoutingKeyMailPrefix+"#", NotificationExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind %s: %w", MailQueue, err)
	}

	if _, err := ch.QueueDeclare(ReminderQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare %s: %w", ReminderQueue, err)
	}
	if err := ch.QueueBind(ReminderQueue, RoutingKeyReminderExpire, DelayedExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind %s: %w", ReminderQueue, err)
	}

	return nil
}

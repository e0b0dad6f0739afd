package model

// MailTaskMessage 通知邮件任务消息
type MailTaskMessage struct {
	MessageID string `json:"message_id"` // 消息唯一ID，用于幂等性检查
	// Category match_proposed / match_accepted / match_rejected /
	// match_completed / message_created / proposal_reminder
	Category         string                 `json:"category"`
	MatchID          int64                  `json:"match_id"`
	RecipientID      int64                  `json:"recipient_id"`
	CounterpartName  string                 `json:"counterpart_name"`
	RouteDescription string                 `json:"route_description"`
	Payload          map[string]interface{} `json:"payload,omitempty"`
}

// ProposalReminderMessage 提案长时间未响应的延迟提醒消息
type ProposalReminderMessage struct {
	MessageID   string `json:"message_id"` // 消息唯一ID，用于幂等性检查
	MatchID     int64  `json:"match_id"`
	ScheduledAt string `json:"scheduled_at"`
}

// EventMessage 事件消息（用于事件总线）
type EventMessage struct {
	Payload    map[string]interface{} `json:"payload"`
	EventKey   string                 `json:"event_key"`
	EventType  string                 `json:"event_type"`
	OccurredAt string                 `json:"occurred_at"`
}

package dto

// ========== Notification 相关 DTO ==========

// NotificationSummary 通知摘要：待处理的入站提案数 + 未读消息数
// 未读数由服务端维护（Redis 读回执），客户端不再本地计数
type NotificationSummary struct {
	PendingProposals int64            `json:"pending_proposals"`
	UnreadMessages   int64            `json:"unread_messages"`
	UnreadByMatch    map[string]int64 `json:"unread_by_match,omitempty"`
}

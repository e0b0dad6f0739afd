package dto

// ========== Message 相关 DTO ==========

// SendMessageRequest 发送会话消息请求
type SendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// MessageData 会话消息
type MessageData struct {
	ID        string `json:"id"`
	MatchID   string `json:"match_id"`
	SenderID  string `json:"sender_id"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

// MessageQuery 会话消息查询参数
type MessageQuery struct {
	Limit  int    `query:"limit"`
	Cursor string `query:"cursor"`
}

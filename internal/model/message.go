package model

// Message 匹配双方的会话消息
type Message struct {
	BaseModel
	PublicID int64  `gorm:"uniqueIndex;not null" json:"public_id"`
	MatchID  int64  `gorm:"index;not null" json:"match_id"`
	SenderID int64  `gorm:"not null" json:"sender_id"`
	Body     string `gorm:"type:text;not null" json:"body"`
}

// TableName 指定表名
func (Message) TableName() string {
	return "messages"
}

package model

// User 用户模型
// 身份认证在上游完成，这里只保存通知投递所需的最小画像
type User struct {
	BaseModel
	PublicID int64 `gorm:"uniqueIndex;not null" json:"public_id"`
	// IdentityRef 上游身份提供方给出的不透明主体标识
	IdentityRef string `gorm:"uniqueIndex;type:varchar(128);not null" json:"-"`
	DisplayName string `gorm:"type:varchar(64);not null;default:''" json:"display_name"`
	Email       string `gorm:"type:varchar(255);not null;default:''" json:"email"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

package dto

// ========== User 相关 DTO ==========

// UserSnapshot 用户公开画像
type UserSnapshot struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	IsNewUser   bool   `json:"is_new_user,omitempty"`
}

// UpdateUserRequest 更新用户画像请求
type UpdateUserRequest struct {
	DisplayName *string `json:"display_name"`
	Email       *string `json:"email"`
}

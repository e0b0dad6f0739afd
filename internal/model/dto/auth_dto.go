package dto

// ========== Auth 相关 DTO ==========

// AuthExchangeRequest 用上游身份主体换取本服务 token 对
type AuthExchangeRequest struct {
	// IdentityRef 上游身份提供方已验证的主体标识
	IdentityRef string `json:"identity_ref" binding:"required"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// AuthExchangeResponse token 对响应
type AuthExchangeResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"`
	User         UserSnapshot `json:"user"`
}

// RefreshTokenRequest 刷新 token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResponse 刷新 token 响应
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

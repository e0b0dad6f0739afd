package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"CoBag/internal/model/dto"
	"CoBag/internal/service"
	"CoBag/pkg/response"
)

// ExchangeIdentity 用上游身份标识换取 token 对
// POST /v1/auth/exchange
func ExchangeIdentity(ctx context.Context, c *app.RequestContext) {
	var req dto.AuthExchangeRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	resp, err := service.Auth().ExchangeIdentity(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, resp)
}

// RefreshToken 刷新访问令牌
// POST /v1/auth/token/refresh
func RefreshToken(ctx context.Context, c *app.RequestContext) {
	var req dto.RefreshTokenRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	resp, err := service.Auth().RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, resp)
}

package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"CoBag/internal/middleware"
	"CoBag/pkg/errors"
	"CoBag/pkg/response"
)

// requireUserID 取当前认证用户，取不到直接写 401 并返回 false
func requireUserID(ctx context.Context, c *app.RequestContext) (int64, bool) {
	userID, exists := middleware.GetUserID(ctx, c)
	if !exists {
		response.Error(ctx, c, errors.Unauthorized)
		return 0, false
	}
	return userID, true
}

// parseIDParam 解析路径里的数字 ID，失败写 400 并返回 false
func parseIDParam(ctx context.Context, c *app.RequestContext, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.Error(ctx, c, errors.InvalidRequest)
		return 0, false
	}
	return id, true
}

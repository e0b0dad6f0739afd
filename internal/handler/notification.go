package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"CoBag/internal/service"
	"CoBag/pkg/response"
)

// GetNotificationSummary 通知摘要
// GET /v1/notifications/summary
func GetNotificationSummary(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}

	summary, err := service.Notification().Summary(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, summary)
}

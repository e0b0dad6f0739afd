package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"CoBag/internal/model/dto"
	"CoBag/internal/service"
	"CoBag/pkg/response"
)

// SendMessage 在匹配会话里发消息
// POST /v1/matches/:match_id/messages
func SendMessage(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}
	matchID, ok := parseIDParam(ctx, c, "match_id")
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	message, err := service.Message().Send(ctx, userID, matchID, req.Body)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, message)
}

// ListMessages 会话消息列表
// GET /v1/matches/:match_id/messages
func ListMessages(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}
	matchID, ok := parseIDParam(ctx, c, "match_id")
	if !ok {
		return
	}

	var query dto.MessageQuery
	if err := c.BindQuery(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	messages, err := service.Message().List(ctx, userID, matchID, query)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.SuccessWithMeta(ctx, c, messages, map[string]interface{}{
		"count": len(messages),
	})
}

// MarkMessagesRead 读回执：清掉当前用户在该会话的未读数
// POST /v1/matches/:match_id/messages/read
func MarkMessagesRead(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}
	matchID, ok := parseIDParam(ctx, c, "match_id")
	if !ok {
		return
	}

	if err := service.Message().MarkRead(ctx, userID, matchID); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}

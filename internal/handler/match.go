package handler

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"CoBag/internal/model"
	"CoBag/internal/model/dto"
	"CoBag/internal/service"
	"CoBag/pkg/errors"
	"CoBag/pkg/response"
)

// ProposeMatch 发起匹配提案
// POST /v1/matches
func ProposeMatch(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}

	var req dto.ProposeMatchRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	tripID, err := strconv.ParseInt(req.TripID, 10, 64)
	if err != nil {
		response.Error(ctx, c, errors.InvalidRequest)
		return
	}
	shipmentID, err := strconv.ParseInt(req.ShipmentRequestID, 10, 64)
	if err != nil {
		response.Error(ctx, c, errors.InvalidRequest)
		return
	}

	match, err := service.Match().Propose(ctx, userID, tripID, shipmentID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, match)
}

// GetMatch 查询单个匹配
// GET /v1/matches/:match_id
func GetMatch(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}
	matchID, ok := parseIDParam(ctx, c, "match_id")
	if !ok {
		return
	}

	match, err := service.Match().Get(ctx, userID, matchID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, match)
}

// ListMyMatches 当前用户参与的匹配
// GET /v1/matches
func ListMyMatches(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}

	var query dto.MatchQuery
	if err := c.BindQuery(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	matches, err := service.Match().List(ctx, userID, query)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.SuccessWithMeta(ctx, c, matches, map[string]interface{}{
		"count": len(matches),
	})
}

// AcceptMatch 接受提案
// POST /v1/matches/:match_id/accept
func AcceptMatch(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}
	matchID, ok := parseIDParam(ctx, c, "match_id")
	if !ok {
		return
	}

	match, err := service.Match().Accept(ctx, userID, matchID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, match)
}

// RejectMatch 拒绝提案
// POST /v1/matches/:match_id/reject
func RejectMatch(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}
	matchID, ok := parseIDParam(ctx, c, "match_id")
	if !ok {
		return
	}

	match, err := service.Match().Reject(ctx, userID, matchID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, match)
}

// ConfirmCheckpoint 确认一个交接环节
// POST /v1/matches/:match_id/checkpoints/:checkpoint
func ConfirmCheckpoint(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}
	matchID, ok := parseIDParam(ctx, c, "match_id")
	if !ok {
		return
	}

	cp, valid := model.ParseCheckpoint(c.Param("checkpoint"))
	if !valid {
		response.Error(ctx, c, errors.InvalidRequest)
		return
	}

	match, err := service.Fulfillment().Confirm(ctx, userID, matchID, cp)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, match)
}

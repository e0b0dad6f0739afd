package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"CoBag/internal/model/dto"
	"CoBag/internal/service"
	"CoBag/pkg/response"
)

// CreateTrip 发布行程
// POST /v1/trips
func CreateTrip(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}

	var req dto.CreateTripRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	trip, err := service.Trip().Create(ctx, userID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, trip)
}

// GetTrip 查询单个行程
// GET /v1/trips/:trip_id
func GetTrip(ctx context.Context, c *app.RequestContext) {
	if _, ok := requireUserID(ctx, c); !ok {
		return
	}
	tripID, ok := parseIDParam(ctx, c, "trip_id")
	if !ok {
		return
	}

	trip, err := service.Trip().Get(ctx, tripID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, trip)
}

// ListMyTrips 当前用户的行程列表
// GET /v1/trips
func ListMyTrips(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}

	var query dto.ListingQuery
	if err := c.BindQuery(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	trips, err := service.Trip().ListMine(ctx, userID, query)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.SuccessWithMeta(ctx, c, trips, map[string]interface{}{
		"count": len(trips),
	})
}

// CloseTrip 下架行程
// POST /v1/trips/:trip_id/close
func CloseTrip(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}
	tripID, ok := parseIDParam(ctx, c, "trip_id")
	if !ok {
		return
	}

	trip, err := service.Trip().Close(ctx, userID, tripID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, trip)
}

// ListTripCandidates 给行程找可运的货件
// GET /v1/trips/:trip_id/candidates
func ListTripCandidates(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}
	tripID, ok := parseIDParam(ctx, c, "trip_id")
	if !ok {
		return
	}

	candidates, err := service.Matching().CandidatesForTrip(ctx, userID, tripID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.SuccessWithMeta(ctx, c, candidates, map[string]interface{}{
		"count": len(candidates),
	})
}

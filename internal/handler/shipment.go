package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"CoBag/internal/model/dto"
	"CoBag/internal/service"
	"CoBag/pkg/response"
)

// CreateShipment 发布货件需求
// POST /v1/shipments
func CreateShipment(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}

	var req dto.CreateShipmentRequest
	if err := c.BindAndValidate(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	shipment, err := service.Shipment().Create(ctx, userID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, shipment)
}

// GetShipment 查询单个货件
// GET /v1/shipments/:shipment_id
func GetShipment(ctx context.Context, c *app.RequestContext) {
	if _, ok := requireUserID(ctx, c); !ok {
		return
	}
	shipmentID, ok := parseIDParam(ctx, c, "shipment_id")
	if !ok {
		return
	}

	shipment, err := service.Shipment().Get(ctx, shipmentID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, shipment)
}

// ListMyShipments 当前用户的货件列表
// GET /v1/shipments
func ListMyShipments(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}

	var query dto.ListingQuery
	if err := c.BindQuery(&query); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	shipments, err := service.Shipment().ListMine(ctx, userID, query)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.SuccessWithMeta(ctx, c, shipments, map[string]interface{}{
		"count": len(shipments),
	})
}

// CloseShipment 下架货件
// POST /v1/shipments/:shipment_id/close
func CloseShipment(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}
	shipmentID, ok := parseIDParam(ctx, c, "shipment_id")
	if !ok {
		return
	}

	shipment, err := service.Shipment().Close(ctx, userID, shipmentID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, shipment)
}

// ListShipmentCandidates 给货件找能运的行程
// GET /v1/shipments/:shipment_id/candidates
func ListShipmentCandidates(ctx context.Context, c *app.RequestContext) {
	userID, ok := requireUserID(ctx, c)
	if !ok {
		return
	}
	shipmentID, ok := parseIDParam(ctx, c, "shipment_id")
	if !ok {
		return
	}

	candidates, err := service.Matching().CandidatesForShipment(ctx, userID, shipmentID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.SuccessWithMeta(ctx, c, candidates, map[string]interface{}{
		"count": len(candidates),
	})
}

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"CoBag/internal/model"
	"CoBag/internal/model/dto"
	"CoBag/internal/repository"
	"CoBag/pkg/errors"
	"CoBag/pkg/logger"
	"CoBag/pkg/snowflake"
	"CoBag/utils"
)

var (
	shipmentService *ShipmentService
	shipmentOnce    sync.Once
)

func Shipment() *ShipmentService {
	shipmentOnce.Do(func() {
		shipmentService = &ShipmentService{}
	})
	return shipmentService
}

type ShipmentService struct{}

// Create 发布货件需求
func (s *ShipmentService) Create(ctx context.Context, senderID int64, req dto.CreateShipmentRequest) (*dto.ShipmentData, error) {
	if hasBlank(req.FromCountry, req.FromCity, req.ToCountry, req.ToCity) {
		return nil, errors.MissingGeography
	}

	earliest, err := utils.ParseDate(req.EarliestDate)
	if err != nil {
		return nil, errors.InvalidDateRange
	}
	latest, err := utils.ParseDate(req.LatestDate)
	if err != nil {
		return nil, errors.InvalidDateRange
	}
	if latest.Before(earliest) {
		return nil, errors.InvalidDateRange
	}

	if req.WeightKg <= 0 {
		return nil, errors.InvalidWeight
	}

	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate shipment ID: %w", err)
	}

	shipment := &model.ShipmentRequest{
		PublicID:     publicID,
		SenderID:     senderID,
		FromCountry:  strings.TrimSpace(req.FromCountry),
		FromCity:     strings.TrimSpace(req.FromCity),
		ToCountry:    strings.TrimSpace(req.ToCountry),
		ToCity:       strings.TrimSpace(req.ToCity),
		EarliestDate: earliest,
		LatestDate:   latest,
		WeightKg:     req.WeightKg,
		ItemType:     strings.TrimSpace(req.ItemType),
		Status:       model.ListingStatusOpen,
	}

	if err := repository.CreateShipment(ctx, shipment); err != nil {
		return nil, fmt.Errorf("failed to create shipment: %w", err)
	}

	logger.Logger.Info("Shipment request created",
		zap.Int64("shipment_id", publicID),
		zap.Int64("sender_id", senderID),
		zap.String("route", routeDescription(shipment.FromCity, shipment.ToCity)),
	)

	return toShipmentData(shipment), nil
}

// Get 查询单个货件
func (s *ShipmentService) Get(ctx context.Context, publicID int64) (*dto.ShipmentData, error) {
	shipment, err := repository.GetShipmentByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return toShipmentData(shipment), nil
}

// ListMine 当前用户的货件列表
func (s *ShipmentService) ListMine(ctx context.Context, senderID int64, query dto.ListingQuery) ([]*dto.ShipmentData, error) {
	if query.Status != "" && !model.ListingStatus(query.Status).Valid() {
		return nil, errors.InvalidStatus
	}

	limit, cursor := normalizePage(query.Limit, query.Cursor)
	shipments, err := repository.ListShipmentsBySender(ctx, senderID, query.Status, cursor, limit)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ShipmentData, 0, len(shipments))
	for _, shipment := range shipments {
		out = append(out, toShipmentData(shipment))
	}
	return out, nil
}

// Close 寄件人主动下架货件，只允许 open → closed
func (s *ShipmentService) Close(ctx context.Context, senderID, publicID int64) (*dto.ShipmentData, error) {
	shipment, err := repository.GetShipmentByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if shipment.SenderID != senderID {
		return nil, errors.Unauthorized
	}

	ok, err := repository.UpdateShipmentStatus(ctx, publicID, model.ListingStatusOpen, model.ListingStatusClosed)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.ListingNotOpen
	}

	shipment.Status = model.ListingStatusClosed
	return toShipmentData(shipment), nil
}

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

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
	tripService *TripService
	tripOnce    sync.Once
)

func Trip() *TripService {
	tripOnce.Do(func() {
		tripService = &TripService{}
	})
	return tripService
}

type TripService struct{}

// Create 发布行程
func (s *TripService) Create(ctx context.Context, travelerID int64, req dto.CreateTripRequest) (*dto.TripData, error) {
	if hasBlank(req.FromCountry, req.FromCity, req.ToCountry, req.ToCity) {
		return nil, errors.MissingGeography
	}

	departure, err := utils.ParseDate(req.DepartureDate)
	if err != nil {
		return nil, errors.InvalidDateRange
	}

	var arrival *time.Time
	if req.ArrivalDate != "" {
		parsed, err := utils.ParseDate(req.ArrivalDate)
		if err != nil {
			return nil, errors.InvalidDateRange
		}
		if parsed.Before(departure) {
			return nil, errors.InvalidDateRange
		}
		arrival = &parsed
	}

	if req.MaxWeightKg < 0 {
		return nil, errors.InvalidWeight
	}

	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate trip ID: %w", err)
	}

	trip := &model.Trip{
		PublicID:      publicID,
		TravelerID:    travelerID,
		FromCountry:   strings.TrimSpace(req.FromCountry),
		FromCity:      strings.TrimSpace(req.FromCity),
		ToCountry:     strings.TrimSpace(req.ToCountry),
		ToCity:        strings.TrimSpace(req.ToCity),
		DepartureDate: departure,
		ArrivalDate:   arrival,
		MaxWeightKg:   req.MaxWeightKg,
		Status:        model.ListingStatusOpen,
	}

	if err := repository.CreateTrip(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	logger.Logger.Info("Trip created",
		zap.Int64("trip_id", publicID),
		zap.Int64("traveler_id", travelerID),
		zap.String("route", routeDescription(trip.FromCity, trip.ToCity)),
	)

	return toTripData(trip), nil
}

// Get 查询单个行程
func (s *TripService) Get(ctx context.Context, publicID int64) (*dto.TripData, error) {
	trip, err := repository.GetTripByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return toTripData(trip), nil
}

// ListMine 当前用户的行程列表
func (s *TripService) ListMine(ctx context.Context, travelerID int64, query dto.ListingQuery) ([]*dto.TripData, error) {
	if query.Status != "" && !model.ListingStatus(query.Status).Valid() {
		return nil, errors.InvalidStatus
	}

	limit, cursor := normalizePage(query.Limit, query.Cursor)
	trips, err := repository.ListTripsByTraveler(ctx, travelerID, query.Status, cursor, limit)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.TripData, 0, len(trips))
	for _, trip := range trips {
		out = append(out, toTripData(trip))
	}
	return out, nil
}

// Close 旅客主动下架行程，只允许 open → closed
func (s *TripService) Close(ctx context.Context, travelerID, publicID int64) (*dto.TripData, error) {
	trip, err := repository.GetTripByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if trip.TravelerID != travelerID {
		return nil, errors.Unauthorized
	}

	ok, err := repository.UpdateTripStatus(ctx, publicID, model.ListingStatusOpen, model.ListingStatusClosed)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.ListingNotOpen
	}

	trip.Status = model.ListingStatusClosed
	return toTripData(trip), nil
}

func hasBlank(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}

// normalizePage 游标与页大小兜底
func normalizePage(limit int, cursor string) (int, int64) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var cursorID int64
	if cursor != "" {
		fmt.Sscanf(cursor, "%d", &cursorID)
	}
	return limit, cursorID
}

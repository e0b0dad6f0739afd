package schedule

// 挂牌过期调度器：出发日 / 时间窗已过却仍 open 的挂牌不该再进候选池，
// 周期性扫描并关闭。

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"CoBag/config"
	"CoBag/internal/model"
	"CoBag/internal/queue"
	"CoBag/internal/repository"
	"CoBag/pkg/logger"
)

var (
	listingSchedulerOnce sync.Once
	listingSchedulerInst *ListingScheduler
)

type ListingScheduler struct {
	logger *zap.Logger

	sweepRunning bool
	sweepMu      sync.Mutex
}

func GetListingScheduler() *ListingScheduler {
	listingSchedulerOnce.Do(func() {
		listingSchedulerInst = &ListingScheduler{
			logger: logger.Logger,
		}
	})
	return listingSchedulerInst
}

// SweepExpiredListings 关闭所有过期的开放挂牌
func (s *ListingScheduler) SweepExpiredListings(ctx context.Context) error {
	s.sweepMu.Lock()
	if s.sweepRunning {
		s.sweepMu.Unlock()
		s.logger.Info("Listing expiry sweep already running, skipping")
		return nil
	}
	s.sweepRunning = true
	s.sweepMu.Unlock()

	defer func() {
		s.sweepMu.Lock()
		s.sweepRunning = false
		s.sweepMu.Unlock()
	}()

	closedTrips, err := s.sweepTrips(ctx)
	if err != nil {
		return err
	}

	closedShipments, err := s.sweepShipments(ctx)
	if err != nil {
		return err
	}

	if closedTrips+closedShipments > 0 {
		s.logger.Info("Listing expiry sweep finished",
			zap.Int("closed_trips", closedTrips),
			zap.Int("closed_shipments", closedShipments),
		)
	}
	return nil
}

func (s *ListingScheduler) sweepTrips(ctx context.Context) (int, error) {
	trips, err := repository.ListExpiredOpenTrips(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list expired trips: %w", err)
	}

	closed := 0
	for _, trip := range trips {
		// 条件更新：扫描和关闭之间被 matched / closed 的行直接跳过
		ok, err := repository.UpdateTripStatus(ctx, trip.PublicID, model.ListingStatusOpen, model.ListingStatusClosed)
		if err != nil {
			s.logger.Error("Failed to close expired trip",
				zap.Int64("trip_id", trip.PublicID),
				zap.Error(err),
			)
			continue
		}
		if ok {
			closed++
			if err := queue.PublishMatchEvent("listing.trip_expired", trip.PublicID, nil); err != nil {
				s.logger.Warn("Trip expiry event not published", zap.Error(err))
			}
		}
	}
	return closed, nil
}

func (s *ListingScheduler) sweepShipments(ctx context.Context) (int, error) {
	shipments, err := repository.ListExpiredOpenShipments(ctx, config.Cfg.MatchDateToleranceDays)
	if err != nil {
		return 0, fmt.Errorf("failed to list expired shipments: %w", err)
	}

	closed := 0
	for _, shipment := range shipments {
		ok, err := repository.UpdateShipmentStatus(ctx, shipment.PublicID, model.ListingStatusOpen, model.ListingStatusClosed)
		if err != nil {
			s.logger.Error("Failed to close expired shipment",
				zap.Int64("shipment_id", shipment.PublicID),
				zap.Error(err),
			)
			continue
		}
		if ok {
			closed++
			if err := queue.PublishMatchEvent("listing.shipment_expired", shipment.PublicID, nil); err != nil {
				s.logger.Warn("Shipment expiry event not published", zap.Error(err))
			}
		}
	}
	return closed, nil
}

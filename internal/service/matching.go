package service

import (
	"context"
	"sync"
	"time"

	"CoBag/config"
	"CoBag/internal/matching"
	"CoBag/internal/model"
	"CoBag/internal/model/dto"
	"CoBag/internal/repository"
	"CoBag/pkg/errors"
	"CoBag/pkg/metrics"
)

var (
	matchingService *MatchingService
	matchingOnce    sync.Once
)

func Matching() *MatchingService {
	matchingOnce.Do(func() {
		matchingService = &MatchingService{
			evaluator: matching.NewEvaluator(config.Cfg.MatchDateToleranceDays),
		}
	})
	return matchingService
}

type MatchingService struct {
	evaluator *matching.Evaluator
}

// 路线预过滤多捞一些，兼容性评估后再截断到展示上限
const routePrefetchFactor = 4

// CandidatesForTrip 旅客视角：给某个行程找可运的货件
func (s *MatchingService) CandidatesForTrip(ctx context.Context, actorID, tripPublicID int64) ([]*dto.CandidateData, error) {
	trip, err := repository.GetTripByPublicID(ctx, tripPublicID)
	if err != nil {
		return nil, err
	}
	if trip.TravelerID != actorID {
		return nil, errors.Unauthorized
	}
	if trip.Status != model.ListingStatusOpen {
		return nil, errors.ListingNotOpen
	}

	start := time.Now()
	limit := config.Cfg.MatchCandidateLimit

	shipments, err := repository.ListOpenShipmentsByRoute(ctx, trip.FromCountry, trip.ToCountry, limit*routePrefetchFactor)
	if err != nil {
		return nil, err
	}

	// 已有活跃提案的配对不再出现在候选里
	live, err := repository.ListLivePairsForTrip(ctx, trip.PublicID)
	if err != nil {
		return nil, err
	}

	var candidates []matching.Candidate
	for _, shipment := range shipments {
		if _, taken := live[shipment.PublicID]; taken {
			continue
		}
		if shipment.SenderID == actorID {
			continue
		}
		if c, ok := s.evaluator.EvaluateForTrip(trip, shipment); ok {
			candidates = append(candidates, *c)
		}
	}

	ranked := matching.Rank(candidates)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	if m := metrics.GetMetrics(); m != nil {
		m.RecordCandidateEvaluation(ctx, "trip", time.Since(start).Seconds(), len(ranked))
	}

	out := make([]*dto.CandidateData, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, toCandidateData(c))
	}
	return out, nil
}

// CandidatesForShipment 寄件人视角：给某个货件找能运的行程
func (s *MatchingService) CandidatesForShipment(ctx context.Context, actorID, shipmentPublicID int64) ([]*dto.CandidateData, error) {
	shipment, err := repository.GetShipmentByPublicID(ctx, shipmentPublicID)
	if err != nil {
		return nil, err
	}
	if shipment.SenderID != actorID {
		return nil, errors.Unauthorized
	}
	if shipment.Status != model.ListingStatusOpen {
		return nil, errors.ListingNotOpen
	}

	start := time.Now()
	limit := config.Cfg.MatchCandidateLimit

	trips, err := repository.ListOpenTripsByRoute(ctx, shipment.FromCountry, shipment.ToCountry, limit*routePrefetchFactor)
	if err != nil {
		return nil, err
	}

	live, err := repository.ListLivePairsForShipment(ctx, shipment.PublicID)
	if err != nil {
		return nil, err
	}

	var candidates []matching.Candidate
	for _, trip := range trips {
		if _, taken := live[trip.PublicID]; taken {
			continue
		}
		if trip.TravelerID == actorID {
			continue
		}
		if c, ok := s.evaluator.EvaluateForShipment(trip, shipment); ok {
			candidates = append(candidates, *c)
		}
	}

	ranked := matching.Rank(candidates)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	if m := metrics.GetMetrics(); m != nil {
		m.RecordCandidateEvaluation(ctx, "shipment", time.Since(start).Seconds(), len(ranked))
	}

	out := make([]*dto.CandidateData, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, toCandidateData(c))
	}
	return out, nil
}

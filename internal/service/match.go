package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"CoBag/config"
	"CoBag/internal/matching"
	"CoBag/internal/model"
	"CoBag/internal/model/dto"
	"CoBag/internal/queue"
	"CoBag/internal/realtime"
	"CoBag/internal/repository"
	"CoBag/pkg/errors"
	"CoBag/pkg/logger"
	"CoBag/pkg/metrics"
	"CoBag/pkg/snowflake"
)

var (
	matchService *MatchService
	matchOnce    sync.Once
)

func Match() *MatchService {
	matchOnce.Do(func() {
		matchService = &MatchService{
			evaluator: matching.NewEvaluator(config.Cfg.MatchDateToleranceDays),
		}
	})
	return matchService
}

type MatchService struct {
	evaluator *matching.Evaluator
}

// Propose 对一个 (行程, 货件) 配对发起提案。
// 发起方必须是其中一方的所有者，双方挂牌都得是 open，
// 并发重复提案由部分唯一索引兜底（CreateMatch 翻译成 DuplicateProposal）。
func (s *MatchService) Propose(ctx context.Context, actorID, tripPublicID, shipmentPublicID int64) (*dto.MatchData, error) {
	trip, err := repository.GetTripByPublicID(ctx, tripPublicID)
	if err != nil {
		return nil, err
	}
	shipment, err := repository.GetShipmentByPublicID(ctx, shipmentPublicID)
	if err != nil {
		return nil, err
	}

	if actorID != trip.TravelerID && actorID != shipment.SenderID {
		return nil, errors.NotParticipant
	}
	if trip.TravelerID == shipment.SenderID {
		// 自己给自己运没有意义
		return nil, errors.InvalidRequest
	}
	if trip.Status != model.ListingStatusOpen || shipment.Status != model.ListingStatusOpen {
		return nil, errors.ListingNotOpen
	}

	// 兼容性按发起方的浏览视角评估，评估结果快照进 match_type
	var candidate *matching.Candidate
	var compatible bool
	proposerRole := "sender"
	if actorID == trip.TravelerID {
		proposerRole = "traveler"
		candidate, compatible = s.evaluator.EvaluateForTrip(trip, shipment)
	} else {
		candidate, compatible = s.evaluator.EvaluateForShipment(trip, shipment)
	}
	if !compatible {
		return nil, errors.InvalidRequest
	}

	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate match ID: %w", err)
	}

	match := &model.Match{
		PublicID:          publicID,
		TripID:            trip.PublicID,
		ShipmentRequestID: shipment.PublicID,
		TravelerID:        trip.TravelerID,
		SenderID:          shipment.SenderID,
		ProposedBy:        actorID,
		Status:            model.MatchStatusPending,
		MatchType:         string(candidate.Type),
	}

	if err := repository.CreateMatch(ctx, match); err != nil {
		return nil, err
	}

	if m := metrics.GetMetrics(); m != nil {
		m.RecordMatchProposed(ctx, match.MatchType, proposerRole)
	}

	logger.Logger.Info("Match proposed",
		zap.Int64("match_id", publicID),
		zap.Int64("trip_id", trip.PublicID),
		zap.Int64("shipment_id", shipment.PublicID),
		zap.String("match_type", match.MatchType),
	)

	s.notifyProposal(ctx, match, trip, actorID)
	return toMatchData(match), nil
}

// notifyProposal 提案创建后的副作用：通知对手方 + 广播事件 + 安排超时提醒。
// 副作用失败不回滚提案，只记日志。
func (s *MatchService) notifyProposal(ctx context.Context, match *model.Match, trip *model.Trip, actorID int64) {
	counterpartID := match.Counterpart()

	proposer, err := repository.GetUserByPublicID(ctx, actorID)
	counterpartName := ""
	if err == nil {
		counterpartName = proposer.DisplayName
	}

	if err := queue.PublishMailTask(model.MailTaskMessage{
		Category:         "match_proposed",
		MatchID:          match.PublicID,
		RecipientID:      counterpartID,
		CounterpartName:  counterpartName,
		RouteDescription: routeDescription(trip.FromCity, trip.ToCity),
	}); err != nil {
		logger.Logger.Warn("Proposal mail task not published", zap.Error(err))
	}

	if err := queue.PublishMatchEvent("match.proposed", match.PublicID, map[string]interface{}{
		"match_type": match.MatchType,
	}); err != nil {
		logger.Logger.Warn("Proposal event not published", zap.Error(err))
	}

	if err := queue.PublishProposalReminder(match.PublicID); err != nil {
		logger.Logger.Warn("Proposal reminder not scheduled", zap.Error(err))
	}

	realtime.Publish(ctx, match.PublicID, "proposed", "")
}

// Accept 对手方接受提案，双方挂牌同时转为 matched
func (s *MatchService) Accept(ctx context.Context, actorID, matchPublicID int64) (*dto.MatchData, error) {
	return s.resolve(ctx, actorID, matchPublicID, model.MatchStatusAccepted)
}

// Reject 对手方拒绝提案，配对可再次发起
func (s *MatchService) Reject(ctx context.Context, actorID, matchPublicID int64) (*dto.MatchData, error) {
	return s.resolve(ctx, actorID, matchPublicID, model.MatchStatusRejected)
}

func (s *MatchService) resolve(ctx context.Context, actorID, matchPublicID int64, to model.MatchStatus) (*dto.MatchData, error) {
	match, err := repository.GetMatchByPublicID(ctx, matchPublicID)
	if err != nil {
		return nil, err
	}
	if err := match.GuardResolve(actorID); err != nil {
		return nil, err
	}

	ok, err := repository.UpdateMatchStatus(ctx, matchPublicID, model.MatchStatusPending, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		// 条件更新零行命中：另一个请求先落了状态
		return nil, errors.MatchNotPending
	}
	match.Status = to

	if to == model.MatchStatusAccepted {
		// 接受后双方挂牌退出候选池；同一挂牌上其余 pending 提案不动，
		// 对手方仍可自行接受或拒绝
		if _, err := repository.UpdateTripStatus(ctx, match.TripID, model.ListingStatusOpen, model.ListingStatusMatched); err != nil {
			logger.Logger.Warn("Failed to mark trip matched", zap.Int64("trip_id", match.TripID), zap.Error(err))
		}
		if _, err := repository.UpdateShipmentStatus(ctx, match.ShipmentRequestID, model.ListingStatusOpen, model.ListingStatusMatched); err != nil {
			logger.Logger.Warn("Failed to mark shipment matched", zap.Int64("shipment_id", match.ShipmentRequestID), zap.Error(err))
		}
	}

	if m := metrics.GetMetrics(); m != nil {
		m.RecordMatchResolved(ctx, string(to))
	}

	logger.Logger.Info("Match resolved",
		zap.Int64("match_id", matchPublicID),
		zap.String("outcome", string(to)),
	)

	s.notifyResolution(ctx, match, to)
	return toMatchData(match), nil
}

func (s *MatchService) notifyResolution(ctx context.Context, match *model.Match, to model.MatchStatus) {
	category := "match_accepted"
	kind := "accepted"
	if to == model.MatchStatusRejected {
		category = "match_rejected"
		kind = "rejected"
	}

	route := ""
	if trip, err := repository.GetTripByPublicID(ctx, match.TripID); err == nil {
		route = routeDescription(trip.FromCity, trip.ToCity)
	}

	resolverName := ""
	if resolver, err := repository.GetUserByPublicID(ctx, match.Counterpart()); err == nil {
		resolverName = resolver.DisplayName
	}

	if err := queue.PublishMailTask(model.MailTaskMessage{
		Category:         category,
		MatchID:          match.PublicID,
		RecipientID:      match.ProposedBy,
		CounterpartName:  resolverName,
		RouteDescription: route,
	}); err != nil {
		logger.Logger.Warn("Resolution mail task not published", zap.Error(err))
	}

	if err := queue.PublishMatchEvent("match."+kind, match.PublicID, nil); err != nil {
		logger.Logger.Warn("Resolution event not published", zap.Error(err))
	}

	realtime.Publish(ctx, match.PublicID, kind, "")
}

// Get 查询单个匹配，仅参与者可见
func (s *MatchService) Get(ctx context.Context, actorID, matchPublicID int64) (*dto.MatchData, error) {
	match, err := repository.GetMatchByPublicID(ctx, matchPublicID)
	if err != nil {
		return nil, err
	}
	if _, ok := match.RoleOf(actorID); !ok {
		return nil, errors.NotParticipant
	}
	return toMatchData(match), nil
}

// List 当前用户参与的匹配
func (s *MatchService) List(ctx context.Context, actorID int64, query dto.MatchQuery) ([]*dto.MatchData, error) {
	if query.Status != "" {
		switch model.MatchStatus(query.Status) {
		case model.MatchStatusPending, model.MatchStatusAccepted,
			model.MatchStatusRejected, model.MatchStatusCompleted:
		default:
			return nil, errors.InvalidStatus
		}
	}

	limit, cursor := normalizePage(query.Limit, query.Cursor)
	matches, err := repository.ListMatchesForUser(ctx, actorID, query.Status, cursor, limit)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.MatchData, 0, len(matches))
	for _, match := range matches {
		if query.Role != "" {
			if role, _ := match.RoleOf(actorID); string(role) != query.Role {
				continue
			}
		}
		out = append(out, toMatchData(match))
	}
	return out, nil
}

package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"CoBag/internal/model"
	"CoBag/internal/model/dto"
	"CoBag/internal/queue"
	"CoBag/internal/realtime"
	"CoBag/internal/repository"
	"CoBag/pkg/errors"
	"CoBag/pkg/logger"
	"CoBag/pkg/metrics"
)

var (
	fulfillmentService *FulfillmentService
	fulfillmentOnce    sync.Once
)

func Fulfillment() *FulfillmentService {
	fulfillmentOnce.Do(func() {
		fulfillmentService = &FulfillmentService{}
	})
	return fulfillmentService
}

type FulfillmentService struct{}

// Confirm 确认一个交接环节。
// 鉴权和顺序约束在内存里校验，写入用条件更新防并发；
// 交付侧确认每次都走 CompleteIfReady，由 RowsAffected 命中的赢家触发完成级联。
func (s *FulfillmentService) Confirm(ctx context.Context, actorID, matchPublicID int64, cp model.Checkpoint) (*dto.MatchData, error) {
	match, err := repository.GetMatchByPublicID(ctx, matchPublicID)
	if err != nil {
		return nil, err
	}

	alreadyDone, err := match.GuardCheckpoint(actorID, cp)
	if err != nil {
		return nil, err
	}
	if alreadyDone {
		// 重复确认幂等返回当前状态，不触发任何副作用
		return toMatchData(match), nil
	}

	ok, err := repository.SetCheckpoint(ctx, matchPublicID, cp)
	if err != nil {
		return nil, err
	}
	if !ok {
		// 条件更新零行命中：状态被并发改过，重读后重新判定
		match, err = repository.GetMatchByPublicID(ctx, matchPublicID)
		if err != nil {
			return nil, err
		}
		alreadyDone, guardErr := match.GuardCheckpoint(actorID, cp)
		if guardErr != nil {
			return nil, guardErr
		}
		if alreadyDone {
			return toMatchData(match), nil
		}
		return nil, errors.CompletionConflict
	}

	role, _ := match.RoleOf(actorID)
	if m := metrics.GetMetrics(); m != nil {
		m.RecordHandoffConfirmation(ctx, string(cp), string(role))
	}

	logger.Logger.Info("Handoff checkpoint confirmed",
		zap.Int64("match_id", matchPublicID),
		zap.String("checkpoint", string(cp)),
		zap.String("role", string(role)),
	)

	realtime.Publish(ctx, matchPublicID, "checkpoint", string(cp))

	// 交付侧确认落库后无条件尝试完成：并发时本地快照看不到对侧刚写入的标志，
	// 不能拿它做门槛，CompleteIfReady 的 WHERE 自身就是完成判定
	if deliveryCheckpoint(cp) {
		if err := s.tryComplete(ctx, match); err != nil {
			return nil, err
		}
	}

	// 返回最新状态，避免并发写之后的本地视图失真
	match, err = repository.GetMatchByPublicID(ctx, matchPublicID)
	if err != nil {
		return nil, err
	}
	return toMatchData(match), nil
}

// deliveryCheckpoint 是否交付侧环节，只有这两个环节可能把匹配推到 completed
func deliveryCheckpoint(cp model.Checkpoint) bool {
	return cp == model.CheckpointTravelerDelivered || cp == model.CheckpointSenderReceived
}

// tryComplete 条件完成。两个确认几乎同时到达时双方都会走到这里，
// 只有 RowsAffected 命中的那个执行级联和通知。
func (s *FulfillmentService) tryComplete(ctx context.Context, match *model.Match) error {
	won, err := repository.CompleteIfReady(ctx, match.PublicID)
	if err != nil {
		return err
	}
	if !won {
		return nil
	}

	if _, err := repository.UpdateTripStatus(ctx, match.TripID, model.ListingStatusMatched, model.ListingStatusCompleted); err != nil {
		logger.Logger.Warn("Failed to mark trip completed", zap.Int64("trip_id", match.TripID), zap.Error(err))
	}
	if _, err := repository.UpdateShipmentStatus(ctx, match.ShipmentRequestID, model.ListingStatusMatched, model.ListingStatusCompleted); err != nil {
		logger.Logger.Warn("Failed to mark shipment completed", zap.Int64("shipment_id", match.ShipmentRequestID), zap.Error(err))
	}

	if m := metrics.GetMetrics(); m != nil {
		m.RecordMatchCompleted(ctx)
	}

	logger.Logger.Info("Match completed",
		zap.Int64("match_id", match.PublicID),
	)

	route := ""
	if trip, err := repository.GetTripByPublicID(ctx, match.TripID); err == nil {
		route = routeDescription(trip.FromCity, trip.ToCity)
	}

	// 完成邮件发给双方
	for _, recipientID := range []int64{match.SenderID, match.TravelerID} {
		if err := queue.PublishMailTask(model.MailTaskMessage{
			Category:         "match_completed",
			MatchID:          match.PublicID,
			RecipientID:      recipientID,
			RouteDescription: route,
		}); err != nil {
			logger.Logger.Warn("Completion mail task not published", zap.Error(err))
		}
	}

	if err := queue.PublishMatchEvent("match.completed", match.PublicID, nil); err != nil {
		logger.Logger.Warn("Completion event not published", zap.Error(err))
	}

	realtime.Publish(ctx, match.PublicID, "completed", "")
	return nil
}

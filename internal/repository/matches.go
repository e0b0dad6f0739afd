package repository

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"

	"CoBag/internal/model"
	"CoBag/pkg/errors"
	"CoBag/storage/database"
)

// checkpointColumns 环节名到列名的白名单，防止拼接任意列
var checkpointColumns = map[model.Checkpoint]string{
	model.CheckpointSenderHandedOver:  "sender_handed_over",
	model.CheckpointTravelerPickedUp:  "traveler_picked_up",
	model.CheckpointTravelerDelivered: "traveler_delivered",
	model.CheckpointSenderReceived:    "sender_received",
}

// CreateMatch 插入 pending 提案。
// 部分唯一索引兜底并发：同一 (trip, shipment) 已有活跃行时
// TranslateError 把约束冲突翻译成 gorm.ErrDuplicatedKey，
// 这里转成业务上的 DuplicateProposal（"已提过"，不是硬错误）。
func CreateMatch(ctx context.Context, match *model.Match) error {
	return translateProposalError(database.DB().WithContext(ctx).Create(match).Error)
}

// translateProposalError 活跃配对唯一索引的冲突转成业务上的 DuplicateProposal
func translateProposalError(err error) error {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.DuplicateProposal
	}
	return err
}

// GetMatchByPublicID 根据 PublicID 查询匹配
func GetMatchByPublicID(ctx context.Context, publicID int64) (*model.Match, error) {
	var match model.Match
	err := database.DB().WithContext(ctx).
		Where("public_id = ?", publicID).
		First(&match).Error

	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.MatchNotFound
	}
	return &match, err
}

// HasLiveMatch 某个配对当前是否存在活跃提案
func HasLiveMatch(ctx context.Context, tripID, shipmentID int64) (bool, error) {
	var count int64
	err := database.DB().WithContext(ctx).
		Model(&model.Match{}).
		Where("trip_id = ? AND shipment_request_id = ?", tripID, shipmentID).
		Where("status IN ?", []model.MatchStatus{model.MatchStatusPending, model.MatchStatusAccepted}).
		Count(&count).Error
	return count > 0, err
}

// ListLivePairsForTrip 行程上仍活跃的货件 ID，用于候选排除
func ListLivePairsForTrip(ctx context.Context, tripID int64) (map[int64]struct{}, error) {
	var ids []int64
	err := database.DB().WithContext(ctx).
		Model(&model.Match{}).
		Where("trip_id = ?", tripID).
		Where("status IN ?", []model.MatchStatus{model.MatchStatusPending, model.MatchStatusAccepted}).
		Pluck("shipment_request_id", &ids).Error
	if err != nil {
		return nil, err
	}

	out := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

// ListLivePairsForShipment 货件上仍活跃的行程 ID，用于候选排除
func ListLivePairsForShipment(ctx context.Context, shipmentID int64) (map[int64]struct{}, error) {
	var ids []int64
	err := database.DB().WithContext(ctx).
		Model(&model.Match{}).
		Where("shipment_request_id = ?", shipmentID).
		Where("status IN ?", []model.MatchStatus{model.MatchStatusPending, model.MatchStatusAccepted}).
		Pluck("trip_id", &ids).Error
	if err != nil {
		return nil, err
	}

	out := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

// UpdateMatchStatus 条件状态迁移（pending→accepted / pending→rejected），返回是否命中
func UpdateMatchStatus(ctx context.Context, publicID int64, from, to model.MatchStatus) (bool, error) {
	res := database.DB().WithContext(ctx).
		Model(&model.Match{}).
		Where("public_id = ? AND status = ?", publicID, from).
		Update("status", to)

	return res.RowsAffected == 1, res.Error
}

// SetCheckpoint 写一个交接环节标志。
// 只在 accepted 且标志仍为 false 时写入；零行命中说明状态被并发改过，
// 调用方应重新读取后再判定（Conflict 语义）。
func SetCheckpoint(ctx context.Context, publicID int64, cp model.Checkpoint) (bool, error) {
	column, ok := checkpointColumns[cp]
	if !ok {
		return false, errors.InvalidRequest
	}

	res := database.DB().WithContext(ctx).
		Model(&model.Match{}).
		Where("public_id = ? AND status = ?", publicID, model.MatchStatusAccepted).
		Where(column+" = false").
		Update(column, true)

	return res.RowsAffected == 1, res.Error
}

// CompleteIfReady 完成判定下沉到存储层的单条条件更新：
// 两个交付确认都为真且仍是 accepted 时才落 completed 和 completed_at。
// 并发双写时只有一个调用方拿到 RowsAffected==1，由它触发级联和副作用。
func CompleteIfReady(ctx context.Context, publicID int64) (bool, error) {
	now := time.Now()
	res := database.DB().WithContext(ctx).
		Model(&model.Match{}).
		Where("public_id = ? AND status = ?", publicID, model.MatchStatusAccepted).
		Where("traveler_delivered = true AND sender_received = true").
		Updates(map[string]interface{}{
			"status":       model.MatchStatusCompleted,
			"completed_at": now,
		})

	return res.RowsAffected == 1, res.Error
}

// ListMatchesForUser 用户参与的匹配（两个角色都算），游标分页
func ListMatchesForUser(ctx context.Context, userID int64, status string, cursorID int64, limit int) ([]*model.Match, error) {
	q := database.DB().WithContext(ctx).
		Where("sender_id = ? OR traveler_id = ?", userID, userID)

	if status != "" {
		q = q.Where("status = ?", status)
	}
	if cursorID > 0 {
		q = q.Where("id < ?", cursorID)
	}

	var matches []*model.Match
	err := q.Order("id DESC").Limit(limit).Find(&matches).Error
	return matches, err
}

// CountPendingIncoming 等待该用户响应的入站提案数（通知摘要）
func CountPendingIncoming(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := database.DB().WithContext(ctx).
		Model(&model.Match{}).
		Where("status = ?", model.MatchStatusPending).
		Where("proposed_by != ?", userID).
		Where("sender_id = ? OR traveler_id = ?", userID, userID).
		Count(&count).Error
	return count, err
}

// ListPendingOlderThan 长时间未响应的提案（定时任务兜底提醒）
func ListPendingOlderThan(ctx context.Context, cutoff time.Time, limit int) ([]*model.Match, error) {
	var matches []*model.Match
	err := database.DB().WithContext(ctx).
		Where("status = ? AND created_at < ?", model.MatchStatusPending, cutoff).
		Order("created_at ASC").
		Limit(limit).
		Find(&matches).Error
	return matches, err
}

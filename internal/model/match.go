package model

import (
	"time"

	"CoBag/pkg/errors"
)

// MatchStatus 匹配状态枚举
type MatchStatus string

const (
	MatchStatusPending   MatchStatus = "pending"
	MatchStatusAccepted  MatchStatus = "accepted"
	MatchStatusRejected  MatchStatus = "rejected"
	MatchStatusCompleted MatchStatus = "completed"
)

// Terminal rejected / completed 之后不允许任何状态写入
func (s MatchStatus) Terminal() bool {
	return s == MatchStatusRejected || s == MatchStatusCompleted
}

// Role 参与者在一个匹配里的角色
type Role string

const (
	RoleSender   Role = "sender"
	RoleTraveler Role = "traveler"
)

// Checkpoint 交接协议的四个确认环节
type Checkpoint string

const (
	CheckpointSenderHandedOver  Checkpoint = "sender_handed_over"
	CheckpointTravelerPickedUp  Checkpoint = "traveler_picked_up"
	CheckpointTravelerDelivered Checkpoint = "traveler_delivered"
	CheckpointSenderReceived    Checkpoint = "sender_received"
)

func ParseCheckpoint(s string) (Checkpoint, bool) {
	switch Checkpoint(s) {
	case CheckpointSenderHandedOver, CheckpointTravelerPickedUp,
		CheckpointTravelerDelivered, CheckpointSenderReceived:
		return Checkpoint(s), true
	}
	return "", false
}

// Match 一次行程与货件的配对
// trip_id / shipment_request_id 上有部分唯一索引（见 storage/database/migrate.go），
// 只约束 pending / accepted 的活跃行，拒绝后允许重新发起提案。
// traveler_id / sender_id 在创建时冗余快照，避免每次鉴权都回表查挂牌。
type Match struct {
	BaseModel
	PublicID          int64 `gorm:"uniqueIndex;not null" json:"public_id"`
	TripID            int64 `gorm:"index;not null" json:"trip_id"`
	ShipmentRequestID int64 `gorm:"index;not null" json:"shipment_request_id"`

	TravelerID int64 `gorm:"index;not null" json:"traveler_id"`
	SenderID   int64 `gorm:"index;not null" json:"sender_id"`
	// ProposedBy 发起方用户 ID，接受/拒绝只能由对方执行
	ProposedBy int64 `gorm:"not null" json:"proposed_by"`

	Status MatchStatus `gorm:"type:varchar(16);not null;default:'pending';index:idx_matches_status" json:"status"`
	// MatchType 提案时的评估结果快照，exact / flexible_date / flexible_location / flexible_both
	MatchType string `gorm:"type:varchar(24);not null;default:''" json:"match_type"`

	SenderHandedOver  bool `gorm:"not null;default:false" json:"sender_handed_over"`
	TravelerPickedUp  bool `gorm:"not null;default:false" json:"traveler_picked_up"`
	TravelerDelivered bool `gorm:"not null;default:false" json:"traveler_delivered"`
	SenderReceived    bool `gorm:"not null;default:false" json:"sender_received"`

	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TableName 指定表名
func (Match) TableName() string {
	return "matches"
}

// RoleOf 返回用户在匹配中的角色，非参与者返回 false
func (m *Match) RoleOf(userID int64) (Role, bool) {
	switch userID {
	case m.SenderID:
		return RoleSender, true
	case m.TravelerID:
		return RoleTraveler, true
	}
	return "", false
}

// Counterpart 返回提案发起方的对手方用户 ID
func (m *Match) Counterpart() int64 {
	if m.ProposedBy == m.TravelerID {
		return m.SenderID
	}
	return m.TravelerID
}

// GuardResolve 校验 accept / reject 前置条件：必须 pending，且操作者是对手方
func (m *Match) GuardResolve(actorID int64) error {
	if _, ok := m.RoleOf(actorID); !ok {
		return errors.NotParticipant
	}
	if m.Status != MatchStatusPending {
		return errors.MatchNotPending
	}
	if actorID != m.Counterpart() {
		return errors.NotCounterpart
	}
	return nil
}

// CheckpointFlag 返回某个环节当前的确认值
func (m *Match) CheckpointFlag(cp Checkpoint) bool {
	switch cp {
	case CheckpointSenderHandedOver:
		return m.SenderHandedOver
	case CheckpointTravelerPickedUp:
		return m.TravelerPickedUp
	case CheckpointTravelerDelivered:
		return m.TravelerDelivered
	case CheckpointSenderReceived:
		return m.SenderReceived
	}
	return false
}

// checkpointActor 每个环节只允许固定角色确认
func checkpointActor(cp Checkpoint) Role {
	switch cp {
	case CheckpointSenderHandedOver, CheckpointSenderReceived:
		return RoleSender
	default:
		return RoleTraveler
	}
}

// GuardCheckpoint 校验一次环节确认。
// 返回 alreadyDone=true 表示该环节此前已确认：幂等返回当前状态，不再写库，
// 也不会重复触发完成副作用。
func (m *Match) GuardCheckpoint(actorID int64, cp Checkpoint) (alreadyDone bool, err error) {
	role, ok := m.RoleOf(actorID)
	if !ok {
		return false, errors.NotParticipant
	}
	if m.Status != MatchStatusAccepted {
		// completed 之后的重复确认按幂等处理，其余状态拒绝
		if m.Status == MatchStatusCompleted && m.CheckpointFlag(cp) && checkpointActor(cp) == role {
			return true, nil
		}
		return false, errors.MatchNotAccepted
	}
	if checkpointActor(cp) != role {
		return false, errors.Unauthorized
	}

	if m.CheckpointFlag(cp) {
		return true, nil
	}

	// 环节依赖：2 需要 1；3、4 都需要 2（双方各自确认交付结果，互不依赖）
	switch cp {
	case CheckpointTravelerPickedUp:
		if !m.SenderHandedOver {
			return false, errors.CheckpointLocked
		}
	case CheckpointTravelerDelivered, CheckpointSenderReceived:
		if !m.TravelerPickedUp {
			return false, errors.CheckpointLocked
		}
	}

	return false, nil
}

// CompletionReady 两个交付确认都为真时匹配可以完成
func (m *Match) CompletionReady() bool {
	return m.TravelerDelivered && m.SenderReceived
}

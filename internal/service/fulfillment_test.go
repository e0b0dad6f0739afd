package service

import (
	"testing"

	"CoBag/internal/model"
)

// 两个交付确认几乎同时落库时，各自读到的快照都看不到对侧的标志。
// 完成尝试必须只看环节类型，不能依赖本地视图的 CompletionReady，
// 否则双方都不触发完成，匹配卡死在 accepted。
func TestDeliveryCheckpointsAlwaysAttemptCompletion(t *testing.T) {
	stale := &model.Match{
		Status:           model.MatchStatusAccepted,
		SenderHandedOver: true,
		TravelerPickedUp: true,
	}
	if stale.CompletionReady() {
		t.Fatal("stale snapshot should not report completion-ready")
	}

	for _, cp := range []model.Checkpoint{model.CheckpointTravelerDelivered, model.CheckpointSenderReceived} {
		if !deliveryCheckpoint(cp) {
			t.Errorf("deliveryCheckpoint(%s) = false, want true", cp)
		}
	}
	for _, cp := range []model.Checkpoint{model.CheckpointSenderHandedOver, model.CheckpointTravelerPickedUp} {
		if deliveryCheckpoint(cp) {
			t.Errorf("deliveryCheckpoint(%s) = true, want false", cp)
		}
	}
}

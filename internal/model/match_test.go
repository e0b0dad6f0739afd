package model

import (
	"testing"

	"CoBag/pkg/errors"
)

const (
	testSenderID   int64 = 100
	testTravelerID int64 = 200
	testOutsiderID int64 = 999
)

func acceptedMatch() *Match {
	return &Match{
		SenderID:   testSenderID,
		TravelerID: testTravelerID,
		ProposedBy: testSenderID,
		Status:     MatchStatusAccepted,
	}
}

func TestGuardResolve(t *testing.T) {
	tests := []struct {
		name    string
		status  MatchStatus
		actor   int64
		wantErr error
	}{
		{"counterpart accepts pending", MatchStatusPending, testTravelerID, nil},
		{"proposer cannot resolve own proposal", MatchStatusPending, testSenderID, errors.NotCounterpart},
		{"outsider rejected", MatchStatusPending, testOutsiderID, errors.NotParticipant},
		{"already accepted", MatchStatusAccepted, testTravelerID, errors.MatchNotPending},
		{"already rejected", MatchStatusRejected, testTravelerID, errors.MatchNotPending},
		{"already completed", MatchStatusCompleted, testTravelerID, errors.MatchNotPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := acceptedMatch()
			m.Status = tt.status

			err := m.GuardResolve(tt.actor)
			if err != tt.wantErr {
				t.Errorf("GuardResolve() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGuardCheckpointActorRestriction(t *testing.T) {
	tests := []struct {
		name    string
		cp      Checkpoint
		actor   int64
		wantErr error
	}{
		{"sender hands over", CheckpointSenderHandedOver, testSenderID, nil},
		{"traveler cannot hand over", CheckpointSenderHandedOver, testTravelerID, errors.Unauthorized},
		{"traveler cannot confirm receipt", CheckpointSenderReceived, testTravelerID, errors.Unauthorized},
		{"sender cannot pick up", CheckpointTravelerPickedUp, testSenderID, errors.Unauthorized},
		{"sender cannot deliver", CheckpointTravelerDelivered, testSenderID, errors.Unauthorized},
		{"outsider blocked", CheckpointSenderHandedOver, testOutsiderID, errors.NotParticipant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := acceptedMatch()
			// 放开前置环节，只测角色限制
			m.SenderHandedOver = tt.cp != CheckpointSenderHandedOver
			m.TravelerPickedUp = tt.cp != CheckpointTravelerPickedUp

			_, err := m.GuardCheckpoint(tt.actor, tt.cp)
			if err != tt.wantErr {
				t.Errorf("GuardCheckpoint(%s) = %v, want %v", tt.cp, err, tt.wantErr)
			}
		})
	}
}

func TestGuardCheckpointPrerequisites(t *testing.T) {
	tests := []struct {
		name       string
		handedOver bool
		pickedUp   bool
		cp         Checkpoint
		actor      int64
		wantErr    error
	}{
		{"pickup requires handover", false, false, CheckpointTravelerPickedUp, testTravelerID, errors.CheckpointLocked},
		{"pickup after handover", true, false, CheckpointTravelerPickedUp, testTravelerID, nil},
		{"delivery requires pickup", true, false, CheckpointTravelerDelivered, testTravelerID, errors.CheckpointLocked},
		{"delivery after pickup", true, true, CheckpointTravelerDelivered, testTravelerID, nil},
		{"receipt requires pickup", true, false, CheckpointSenderReceived, testSenderID, errors.CheckpointLocked},
		{"receipt after pickup", true, true, CheckpointSenderReceived, testSenderID, nil},
		{"handover has no prerequisite", false, false, CheckpointSenderHandedOver, testSenderID, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := acceptedMatch()
			m.SenderHandedOver = tt.handedOver
			m.TravelerPickedUp = tt.pickedUp

			_, err := m.GuardCheckpoint(tt.actor, tt.cp)
			if err != tt.wantErr {
				t.Errorf("GuardCheckpoint(%s) = %v, want %v", tt.cp, err, tt.wantErr)
			}
		})
	}
}

// 交付后的收货确认不依赖交付确认，双方从各自视角确认环节 3 的结果
func TestReceiptIndependentOfDelivery(t *testing.T) {
	m := acceptedMatch()
	m.SenderHandedOver = true
	m.TravelerPickedUp = true

	if done, err := m.GuardCheckpoint(testSenderID, CheckpointSenderReceived); err != nil || done {
		t.Fatalf("sender receipt before traveler delivery: done=%v err=%v", done, err)
	}
}

func TestGuardCheckpointIdempotent(t *testing.T) {
	m := acceptedMatch()
	m.SenderHandedOver = true

	done, err := m.GuardCheckpoint(testSenderID, CheckpointSenderHandedOver)
	if err != nil {
		t.Fatalf("re-confirming true flag errored: %v", err)
	}
	if !done {
		t.Fatal("re-confirming true flag should report alreadyDone")
	}
}

func TestGuardCheckpointAfterCompletion(t *testing.T) {
	m := acceptedMatch()
	m.Status = MatchStatusCompleted
	m.SenderHandedOver = true
	m.TravelerPickedUp = true
	m.TravelerDelivered = true
	m.SenderReceived = true

	// 完成后的重复确认幂等
	done, err := m.GuardCheckpoint(testSenderID, CheckpointSenderReceived)
	if err != nil || !done {
		t.Fatalf("re-confirm after completion: done=%v err=%v", done, err)
	}

	// 完成后不允许新的确认写入
	m.SenderReceived = false
	if _, err := m.GuardCheckpoint(testSenderID, CheckpointSenderReceived); err != errors.MatchNotAccepted {
		t.Fatalf("new confirmation after completion = %v, want %v", err, errors.MatchNotAccepted)
	}
}

func TestGuardCheckpointOnPendingMatch(t *testing.T) {
	m := acceptedMatch()
	m.Status = MatchStatusPending

	if _, err := m.GuardCheckpoint(testSenderID, CheckpointSenderHandedOver); err != errors.MatchNotAccepted {
		t.Fatalf("checkpoint on pending match = %v, want %v", err, errors.MatchNotAccepted)
	}
}

func TestCompletionReady(t *testing.T) {
	tests := []struct {
		name      string
		delivered bool
		received  bool
		want      bool
	}{
		{"neither", false, false, false},
		{"delivered only", true, false, false},
		{"received only", false, true, false},
		{"both", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := acceptedMatch()
			m.TravelerDelivered = tt.delivered
			m.SenderReceived = tt.received

			if got := m.CompletionReady(); got != tt.want {
				t.Errorf("CompletionReady() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCounterpart(t *testing.T) {
	m := acceptedMatch()
	if got := m.Counterpart(); got != testTravelerID {
		t.Errorf("Counterpart() = %d, want traveler %d", got, testTravelerID)
	}

	m.ProposedBy = testTravelerID
	if got := m.Counterpart(); got != testSenderID {
		t.Errorf("Counterpart() = %d, want sender %d", got, testSenderID)
	}
}

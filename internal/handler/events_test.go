package handler

import (
	"encoding/json"
	"testing"

	"CoBag/internal/realtime"
)

func TestToSSEEvent(t *testing.T) {
	event := realtime.MatchEvent{
		EventID:    "evt-1",
		MatchID:    42,
		Kind:       "checkpoint",
		Checkpoint: "traveler_delivered",
		OccurredAt: "2025-06-10T08:00:00Z",
	}

	out := toSSEEvent(event)
	if out.ID != "evt-1" || out.Event != "checkpoint" {
		t.Errorf("ID/Event = %q/%q, want evt-1/checkpoint", out.ID, out.Event)
	}

	var decoded realtime.MatchEvent
	if err := json.Unmarshal(out.Data, &decoded); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if decoded != event {
		t.Errorf("decoded = %+v, want %+v", decoded, event)
	}
}

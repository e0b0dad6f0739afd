package database

import (
	"strings"
	"testing"
)

// 唯一性只约束活跃状态的配对：rejected / completed 的历史行不挡重新发起
func TestLiveMatchIndexScope(t *testing.T) {
	if !strings.Contains(liveMatchIndexSQL, "UNIQUE INDEX") {
		t.Error("live pair index must be unique")
	}
	if !strings.Contains(liveMatchIndexSQL, "(trip_id, shipment_request_id)") {
		t.Error("index must cover the (trip, shipment) pair")
	}
	if !strings.Contains(liveMatchIndexSQL, "WHERE status IN ('pending', 'accepted')") {
		t.Error("uniqueness must be scoped to live statuses only")
	}
	for _, status := range []string{"rejected", "completed"} {
		if strings.Contains(liveMatchIndexSQL, status) {
			t.Errorf("terminal status %q must not constrain uniqueness", status)
		}
	}
}

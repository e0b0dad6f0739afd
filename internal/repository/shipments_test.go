package repository

import (
	"testing"
	"time"
)

// 时间窗刚关的货件对 latest+容差内出发的行程仍柔性兼容，不能提前被关
func TestShipmentExpiryCutoff(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		tolerance int
		latest    time.Time
		expired   bool
	}{
		{"window closed yesterday", 3, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), false},
		{"on the tolerance line", 3, time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), false},
		{"past tolerance", 3, time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC), true},
		{"zero tolerance", 0, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), true},
		{"window still open", 3, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cutoff := shipmentExpiryCutoff(now, tt.tolerance)
			if got := tt.latest.Before(cutoff); got != tt.expired {
				t.Errorf("latest %s vs cutoff %s: expired = %v, want %v",
					tt.latest.Format("2006-01-02"), cutoff.Format("2006-01-02"), got, tt.expired)
			}
		})
	}
}

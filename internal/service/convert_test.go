package service

import (
	"testing"
	"time"

	"CoBag/internal/model"
)

func TestToMatchData(t *testing.T) {
	completedAt := time.Date(2025, 6, 20, 15, 4, 5, 0, time.UTC)
	match := &model.Match{
		PublicID:          12345,
		TripID:            111,
		ShipmentRequestID: 222,
		TravelerID:        10,
		SenderID:          20,
		ProposedBy:        20,
		Status:            model.MatchStatusCompleted,
		MatchType:         "flexible_date",
		SenderHandedOver:  true,
		TravelerPickedUp:  true,
		TravelerDelivered: true,
		SenderReceived:    true,
		CompletedAt:       &completedAt,
	}
	match.CreatedAt = time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	data := toMatchData(match)

	if data.ID != "12345" {
		t.Errorf("ID = %q, want \"12345\"", data.ID)
	}
	if data.TripID != "111" || data.ShipmentRequestID != "222" {
		t.Errorf("listing IDs = %q / %q", data.TripID, data.ShipmentRequestID)
	}
	if data.Status != "completed" || data.MatchType != "flexible_date" {
		t.Errorf("status/type = %q / %q", data.Status, data.MatchType)
	}
	if !data.SenderHandedOver || !data.TravelerPickedUp || !data.TravelerDelivered || !data.SenderReceived {
		t.Error("checkpoint flags not carried over")
	}
	if data.CompletedAt != "2025-06-20T15:04:05Z" {
		t.Errorf("CompletedAt = %q", data.CompletedAt)
	}
}

func TestToMatchDataPendingOmitsCompletedAt(t *testing.T) {
	match := &model.Match{PublicID: 1, Status: model.MatchStatusPending}

	if got := toMatchData(match).CompletedAt; got != "" {
		t.Errorf("CompletedAt = %q, want empty", got)
	}
}

func TestToTripDataOptionalArrival(t *testing.T) {
	trip := &model.Trip{
		PublicID:      7,
		TravelerID:    10,
		FromCity:      "Paris",
		ToCity:        "Alger",
		DepartureDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Status:        model.ListingStatusOpen,
	}

	data := toTripData(trip)
	if data.DepartureDate != "2025-06-10" {
		t.Errorf("DepartureDate = %q", data.DepartureDate)
	}
	if data.ArrivalDate != "" {
		t.Errorf("ArrivalDate = %q, want empty", data.ArrivalDate)
	}

	arrival := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	trip.ArrivalDate = &arrival
	if got := toTripData(trip).ArrivalDate; got != "2025-06-11" {
		t.Errorf("ArrivalDate = %q, want 2025-06-11", got)
	}
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		cursor     string
		wantLimit  int
		wantCursor int64
	}{
		{"defaults", 0, "", 20, 0},
		{"explicit", 50, "12345", 50, 12345},
		{"over cap", 500, "", 20, 0},
		{"negative", -1, "", 20, 0},
		{"garbage cursor", 10, "abc", 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, cursor := normalizePage(tt.limit, tt.cursor)
			if limit != tt.wantLimit || cursor != tt.wantCursor {
				t.Errorf("normalizePage(%d, %q) = (%d, %d), want (%d, %d)",
					tt.limit, tt.cursor, limit, cursor, tt.wantLimit, tt.wantCursor)
			}
		})
	}
}

func TestRouteDescription(t *testing.T) {
	if got := routeDescription("Paris", "Alger"); got != "Paris → Alger" {
		t.Errorf("routeDescription = %q", got)
	}
}

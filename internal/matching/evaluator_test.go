package matching

import (
	"testing"
	"time"

	"CoBag/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testTrip(fromCity, toCity string, departure time.Time, maxWeight float64) *model.Trip {
	return &model.Trip{
		FromCountry:   "France",
		FromCity:      fromCity,
		ToCountry:     "Algérie",
		ToCity:        toCity,
		DepartureDate: departure,
		MaxWeightKg:   maxWeight,
		Status:        model.ListingStatusOpen,
	}
}

func testShipment(fromCity, toCity string, earliest, latest time.Time, weight float64) *model.ShipmentRequest {
	return &model.ShipmentRequest{
		FromCountry:  "France",
		FromCity:     fromCity,
		ToCountry:    "Algérie",
		ToCity:       toCity,
		EarliestDate: earliest,
		LatestDate:   latest,
		WeightKg:     weight,
		Status:       model.ListingStatusOpen,
	}
}

func TestExactMatch(t *testing.T) {
	e := NewEvaluator(3)
	trip := testTrip("Paris", "Alger", date(2025, 6, 10), 20)
	ship := testShipment("Paris", "Alger", date(2025, 6, 8), date(2025, 6, 12), 5)

	c, ok := e.EvaluateForShipment(trip, ship)
	if !ok {
		t.Fatal("expected compatible pair")
	}
	if c.Type != MatchExact {
		t.Errorf("Type = %s, want %s", c.Type, MatchExact)
	}
	if c.DateDifferenceDays != 0 {
		t.Errorf("DateDifferenceDays = %d, want 0", c.DateDifferenceDays)
	}
}

// Paris→Alger 2025-06-10 对窗口 06-08..06-09 → flexible_date, diff=1
func TestFlexibleDateScenario(t *testing.T) {
	e := NewEvaluator(3)
	trip := testTrip("Paris", "Alger", date(2025, 6, 10), 20)
	ship := testShipment("Paris", "Alger", date(2025, 6, 8), date(2025, 6, 9), 5)

	c, ok := e.EvaluateForShipment(trip, ship)
	if !ok {
		t.Fatal("expected compatible pair")
	}
	if c.Type != MatchFlexibleDate {
		t.Errorf("Type = %s, want %s", c.Type, MatchFlexibleDate)
	}
	if c.DateDifferenceDays != 1 {
		t.Errorf("DateDifferenceDays = %d, want 1", c.DateDifferenceDays)
	}
}

func TestDateToleranceBoundary(t *testing.T) {
	e := NewEvaluator(3)
	earliest, latest := date(2025, 6, 10), date(2025, 6, 15)

	tests := []struct {
		name       string
		departure  time.Time
		compatible bool
		matchType  MatchType
		diff       int
	}{
		{"earliest minus 3 is flexible", date(2025, 6, 7), true, MatchFlexibleDate, 3},
		{"earliest minus 4 is incompatible", date(2025, 6, 6), false, "", 0},
		{"latest plus 3 is flexible", date(2025, 6, 18), true, MatchFlexibleDate, 3},
		{"latest plus 4 is incompatible", date(2025, 6, 19), false, "", 0},
		{"window boundary inclusive", date(2025, 6, 10), true, MatchExact, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := testTrip("Paris", "Alger", tt.departure, 20)
			ship := testShipment("Paris", "Alger", earliest, latest, 5)

			c, ok := e.EvaluateForShipment(trip, ship)
			if ok != tt.compatible {
				t.Fatalf("compatible = %v, want %v", ok, tt.compatible)
			}
			if !ok {
				return
			}
			if c.Type != tt.matchType || c.DateDifferenceDays != tt.diff {
				t.Errorf("got (%s, %d), want (%s, %d)", c.Type, c.DateDifferenceDays, tt.matchType, tt.diff)
			}
		})
	}
}

func TestWeightConstraint(t *testing.T) {
	e := NewEvaluator(3)
	ship := testShipment("Paris", "Alger", date(2025, 6, 8), date(2025, 6, 12), 25)

	// 25kg 对 20kg 运力：地理日期再合适也不兼容
	trip := testTrip("Paris", "Alger", date(2025, 6, 10), 20)
	if _, ok := e.EvaluateForShipment(trip, ship); ok {
		t.Error("25kg against 20kg capacity must be incompatible")
	}

	// 运力为 0 视为不受限
	unbounded := testTrip("Paris", "Alger", date(2025, 6, 10), 0)
	if _, ok := e.EvaluateForShipment(unbounded, ship); !ok {
		t.Error("zero capacity must be treated as unconstrained")
	}
}

func TestCountryPairMismatch(t *testing.T) {
	e := NewEvaluator(3)
	trip := testTrip("Paris", "Alger", date(2025, 6, 10), 20)
	ship := testShipment("Paris", "Alger", date(2025, 6, 8), date(2025, 6, 12), 5)
	ship.ToCountry = "Maroc"

	if _, ok := e.EvaluateForShipment(trip, ship); ok {
		t.Error("different destination countries must be incompatible")
	}
}

func TestDestinationRegionFallback(t *testing.T) {
	e := NewEvaluator(3)
	// Alger 和 Blida 同属 Algérois
	trip := testTrip("Paris", "Alger", date(2025, 6, 10), 20)
	ship := testShipment("Paris", "Blida", date(2025, 6, 8), date(2025, 6, 12), 5)

	c, ok := e.EvaluateForShipment(trip, ship)
	if !ok {
		t.Fatal("same-region destinations should be compatible")
	}
	if c.Type != MatchFlexibleLocation {
		t.Errorf("Type = %s, want %s", c.Type, MatchFlexibleLocation)
	}
	if c.RegionName != "Algérois" {
		t.Errorf("RegionName = %q, want Algérois", c.RegionName)
	}
}

func TestFlexibleBoth(t *testing.T) {
	e := NewEvaluator(3)
	trip := testTrip("Paris", "Alger", date(2025, 6, 7), 20)
	ship := testShipment("Paris", "Blida", date(2025, 6, 10), date(2025, 6, 15), 5)

	c, ok := e.EvaluateForShipment(trip, ship)
	if !ok {
		t.Fatal("expected compatible pair")
	}
	if c.Type != MatchFlexibleBoth {
		t.Errorf("Type = %s, want %s", c.Type, MatchFlexibleBoth)
	}
	if c.DateDifferenceDays != 3 {
		t.Errorf("DateDifferenceDays = %d, want 3", c.DateDifferenceDays)
	}
}

// 两个视角对同一配对必须给出一致的判定与分级……
func TestViewSymmetry(t *testing.T) {
	e := NewEvaluator(3)
	tests := []struct {
		name string
		trip *model.Trip
		ship *model.ShipmentRequest
	}{
		{"exact", testTrip("Paris", "Alger", date(2025, 6, 10), 20),
			testShipment("Paris", "Alger", date(2025, 6, 8), date(2025, 6, 12), 5)},
		{"flexible date", testTrip("Lyon", "Oran", date(2025, 7, 1), 15),
			testShipment("Lyon", "Oran", date(2025, 7, 3), date(2025, 7, 10), 4)},
		{"incompatible weight", testTrip("Paris", "Alger", date(2025, 6, 10), 10),
			testShipment("Paris", "Alger", date(2025, 6, 8), date(2025, 6, 12), 12)},
		{"literal origin overlap", testTrip("Paris 15e", "Alger", date(2025, 6, 10), 20),
			testShipment("Paris", "Alger", date(2025, 6, 8), date(2025, 6, 12), 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, okA := e.EvaluateForShipment(tt.trip, tt.ship)
			b, okB := e.EvaluateForTrip(tt.trip, tt.ship)

			if okA != okB {
				t.Fatalf("views disagree on compatibility: shipment=%v trip=%v", okA, okB)
			}
			if okA && a.Type != b.Type {
				t.Errorf("views disagree on type: shipment=%s trip=%s", a.Type, b.Type)
			}
		})
	}
}

// ……唯一例外：旅客视角的出发地只做字面包含，不走同区兜底。
// 这是源行为，保持并固定，不做静默统一。
func TestOriginAsymmetry(t *testing.T) {
	e := NewEvaluator(3)
	// Paris 和 Versailles 同属 Île-de-France，但无字面包含
	trip := testTrip("Versailles", "Alger", date(2025, 6, 10), 20)
	ship := testShipment("Paris", "Alger", date(2025, 6, 8), date(2025, 6, 12), 5)

	if _, ok := e.EvaluateForShipment(trip, ship); !ok {
		t.Error("sender view must accept same-region origins")
	}
	if _, ok := e.EvaluateForTrip(trip, ship); ok {
		t.Error("traveler view must not fall back to region matching on the origin side")
	}
}

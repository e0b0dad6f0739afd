package matching

import (
	"reflect"
	"testing"
)

func TestRank(t *testing.T) {
	in := []Candidate{
		{Type: MatchFlexibleDate, DateDifferenceDays: 2},
		{Type: MatchExact},
		{Type: MatchFlexibleBoth, DateDifferenceDays: 1},
	}

	got := Rank(in)
	want := []Candidate{
		{Type: MatchExact},
		{Type: MatchFlexibleBoth, DateDifferenceDays: 1},
		{Type: MatchFlexibleDate, DateDifferenceDays: 2},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() = %v, want %v", got, want)
	}

	// 入参不被修改
	if in[0].Type != MatchFlexibleDate {
		t.Error("Rank must not mutate its input")
	}
}

func TestRankStability(t *testing.T) {
	in := []Candidate{
		{Type: MatchFlexibleDate, DateDifferenceDays: 1, RegionName: "first"},
		{Type: MatchFlexibleLocation, DateDifferenceDays: 1, RegionName: "second"},
		{Type: MatchFlexibleBoth, DateDifferenceDays: 1, RegionName: "third"},
	}

	got := Rank(in)
	for i, want := range []string{"first", "second", "third"} {
		if got[i].RegionName != want {
			t.Errorf("position %d = %s, want %s (ties must preserve discovery order)", i, got[i].RegionName, want)
		}
	}
}

func TestBest(t *testing.T) {
	tests := []struct {
		name string
		in   []Candidate
		want *MatchType
	}{
		{"empty", nil, nil},
		{"prefers exact", []Candidate{
			{Type: MatchFlexibleDate, DateDifferenceDays: 1},
			{Type: MatchExact},
		}, typePtr(MatchExact)},
		{"first found wins without exact", []Candidate{
			{Type: MatchFlexibleBoth, DateDifferenceDays: 3},
			{Type: MatchFlexibleDate, DateDifferenceDays: 1},
		}, typePtr(MatchFlexibleBoth)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Best(tt.in)
			if tt.want == nil {
				if got != nil {
					t.Errorf("Best() = %v, want nil", got)
				}
				return
			}
			if got == nil || got.Type != *tt.want {
				t.Errorf("Best() = %v, want type %s", got, *tt.want)
			}
		})
	}
}

func typePtr(t MatchType) *MatchType {
	return &t
}

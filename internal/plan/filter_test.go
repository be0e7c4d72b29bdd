package plan

import (
	"testing"

	"tripdeck/internal/model"
)

func TestByDuration_Bands(t *testing.T) {
	acts := []model.Activity{
		{ID: "short", EstimatedDurationHours: 1.5},
		{ID: "edge2", EstimatedDurationHours: 2},
		{ID: "medium", EstimatedDurationHours: 3.5},
		{ID: "edge4", EstimatedDurationHours: 4},
		{ID: "long", EstimatedDurationHours: 8},
	}

	cases := []struct {
		band DurationBand
		want []string
	}{
		{BandShort, []string{"short"}},
		{BandMedium, []string{"edge2", "medium"}},
		{BandLong, []string{"edge4", "long"}},
	}
	for _, c := range cases {
		got := ByDuration(acts, c.band)
		if len(got) != len(c.want) {
			t.Fatalf("%s: got %v, want %v", c.band, ids(got), c.want)
		}
		for i, id := range c.want {
			if got[i].ID != id {
				t.Fatalf("%s: got %v, want %v", c.band, ids(got), c.want)
			}
		}
	}
}

func TestByTimeOfDay_FlexibleMatchesEverySlot(t *testing.T) {
	acts := []model.Activity{
		{ID: "m", RecommendedTimeOfDay: model.TimeMorning},
		{ID: "e", RecommendedTimeOfDay: model.TimeEvening},
		{ID: "f", RecommendedTimeOfDay: model.TimeFlexible},
	}

	got := ByTimeOfDay(acts, model.TimeMorning)
	if len(got) != 2 || got[0].ID != "m" || got[1].ID != "f" {
		t.Fatalf("got %v, want [m f]", ids(got))
	}
}

func TestForCity_ExactNameMatch(t *testing.T) {
	acts := []model.Activity{
		{ID: "a", CityOrRegion: "Hanoi"},
		{ID: "b", CityOrRegion: "Hoi An"},
		{ID: "c", CityOrRegion: "Hanoi"},
	}
	got := ForCity(acts, "Hanoi")
	if len(got) != 2 {
		t.Fatalf("got %v, want [a c]", ids(got))
	}
}

func TestInterested(t *testing.T) {
	acts := []model.Activity{
		{ID: "a", IsInterested: true},
		{ID: "b"},
	}
	got := Interested(acts)
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("got %v, want [a]", ids(got))
	}
}

func TestParseDurationBand(t *testing.T) {
	if _, ok := ParseDurationBand("weekend"); ok {
		t.Fatal("parsed unknown band")
	}
	if b, ok := ParseDurationBand("medium"); !ok || b != BandMedium {
		t.Fatalf("ParseDurationBand(medium) = %v, %v", b, ok)
	}
}

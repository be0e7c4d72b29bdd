package plan

import (
	"testing"
	"time"

	"tripdeck/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateFormat, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestGenerateDays_InclusiveRange(t *testing.T) {
	stops := []model.CityStop{{
		ID:        "hcmc",
		Name:      "Ho Chi Minh City",
		StartDate: mustDate(t, "2026-03-08"),
		EndDate:   mustDate(t, "2026-03-10"),
	}}

	days := GenerateDays(stops)
	if len(days) != 3 {
		t.Fatalf("got %d days, want 3", len(days))
	}

	wantDates := []string{"2026-03-08", "2026-03-09", "2026-03-10"}
	for i, d := range days {
		if got := d.Date.Format(model.DateFormat); got != wantDates[i] {
			t.Errorf("day %d date = %s, want %s", i, got, wantDates[i])
		}
		if d.CityOrRegion != "Ho Chi Minh City" {
			t.Errorf("day %d city = %q", i, d.CityOrRegion)
		}
		if len(d.ScheduledActivities) != 0 || d.TotalScheduledHours != 0 {
			t.Errorf("day %d not empty: %d activities, %v hours",
				i, len(d.ScheduledActivities), d.TotalScheduledHours)
		}
	}
}

func TestGenerateDays_SingleDayStop(t *testing.T) {
	stops := []model.CityStop{{
		ID:        "hue",
		Name:      "Hue",
		StartDate: mustDate(t, "2026-03-12"),
		EndDate:   mustDate(t, "2026-03-12"),
	}}
	if days := GenerateDays(stops); len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
}

func TestGenerateDays_MalformedRangeEmitsNothing(t *testing.T) {
	stops := []model.CityStop{{
		ID:        "bad",
		Name:      "Backwards",
		StartDate: mustDate(t, "2026-03-10"),
		EndDate:   mustDate(t, "2026-03-08"),
	}}
	if days := GenerateDays(stops); len(days) != 0 {
		t.Fatalf("got %d days for end < start, want 0", len(days))
	}
}

func TestGenerateDays_KeepsStopOrderNotDateOrder(t *testing.T) {
	// Overlapping ranges: output must be per-stop concatenation, not a
	// globally sorted merge.
	stops := []model.CityStop{
		{ID: "b", Name: "Second", StartDate: mustDate(t, "2026-03-10"), EndDate: mustDate(t, "2026-03-11")},
		{ID: "a", Name: "First", StartDate: mustDate(t, "2026-03-08"), EndDate: mustDate(t, "2026-03-09")},
	}

	days := GenerateDays(stops)
	if len(days) != 4 {
		t.Fatalf("got %d days, want 4", len(days))
	}
	wantCities := []string{"Second", "Second", "First", "First"}
	for i, d := range days {
		if d.CityOrRegion != wantCities[i] {
			t.Fatalf("day %d city = %q, want %q", i, d.CityOrRegion, wantCities[i])
		}
	}
}

func TestGenerateDays_DeterministicIDs(t *testing.T) {
	stops := []model.CityStop{{
		ID:        "hanoi",
		Name:      "Hanoi",
		StartDate: mustDate(t, "2026-03-17"),
		EndDate:   mustDate(t, "2026-03-18"),
	}}

	first := GenerateDays(stops)
	second := GenerateDays(stops)
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("day %d id changed across runs: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
	if first[0].ID != "day-hanoi-2026-03-17" {
		t.Fatalf("day id = %q, want day-hanoi-2026-03-17", first[0].ID)
	}
}

package cli

import (
	"testing"
	"time"

	"tripdeck/internal/model"
)

func TestFormatHours(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{3, "3h"},
		{3.5, "3.5h"},
		{0.75, "0.8h"},
		{0, "0h"},
		{10, "10h"},
	}
	for _, c := range cases {
		if got := FormatHours(c.hours); got != c.want {
			t.Errorf("FormatHours(%v) = %q, want %q", c.hours, got, c.want)
		}
	}
}

func TestFormatDuration_Bands(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{1.5, "1.5h (short)"},
		{2, "2h (medium)"},
		{3.5, "3.5h (medium)"},
		{4, "4h (long)"},
		{5, "5h (long)"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.hours); got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.hours, got, c.want)
		}
	}
}

func TestFormatDateRange(t *testing.T) {
	start := time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	if got := FormatDateRange(start, end); got != "Mar 8 – Mar 10" {
		t.Fatalf("FormatDateRange = %q", got)
	}
}

func TestFormatNights(t *testing.T) {
	if got := FormatNights(1); got != "1 night" {
		t.Fatalf("FormatNights(1) = %q", got)
	}
	if got := FormatNights(3); got != "3 nights" {
		t.Fatalf("FormatNights(3) = %q", got)
	}
}

func TestFormatStatus(t *testing.T) {
	if got := FormatStatus(model.StatusOverbooked); got != "overbooked" {
		t.Fatalf("FormatStatus = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("Truncate kept = %q", got)
	}
	if got := Truncate("a very long activity title", 10); got != "a very lo…" {
		t.Fatalf("Truncate cut = %q", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Fatalf("empty input = %q", got)
	}
	got := RenderSparkline([]float64{0, 5, 10})
	if len([]rune(got)) != 3 {
		t.Fatalf("sparkline length = %d, want 3", len([]rune(got)))
	}
}

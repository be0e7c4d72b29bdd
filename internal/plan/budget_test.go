package plan

import (
	"testing"

	"tripdeck/internal/model"
)

func TestClassify_Bands(t *testing.T) {
	cases := []struct {
		hours float64
		want  model.Status
	}{
		{0, model.StatusUnderbooked},
		{5.9, model.StatusUnderbooked},
		{6.0, model.StatusApproaching},
		{8.9, model.StatusApproaching},
		{9.0, model.StatusFull},
		{10.0, model.StatusFull},
		{10.1, model.StatusOverbooked},
	}
	for _, c := range cases {
		if got := Classify(c.hours, 10); got != c.want {
			t.Errorf("Classify(%v, 10) = %s, want %s", c.hours, got, c.want)
		}
	}
}

func TestClassify_NegativeHoursAreUnderbooked(t *testing.T) {
	if got := Classify(-3, 10); got != model.StatusUnderbooked {
		t.Fatalf("Classify(-3, 10) = %s, want underbooked", got)
	}
}

func TestClassify_ExactBudgetIsFullNotOverbooked(t *testing.T) {
	if got := Classify(8, 8); got != model.StatusFull {
		t.Fatalf("Classify(8, 8) = %s, want full", got)
	}
}

func TestTotalHours(t *testing.T) {
	acts := []model.Activity{
		{ID: "a", EstimatedDurationHours: 2},
		{ID: "b", EstimatedDurationHours: 3.5},
	}
	if got := TotalHours(acts); got != 5.5 {
		t.Fatalf("TotalHours = %v, want 5.5", got)
	}
	if got := TotalHours(nil); got != 0 {
		t.Fatalf("TotalHours(nil) = %v, want 0", got)
	}
}

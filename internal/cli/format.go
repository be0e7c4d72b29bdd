// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"
	"time"

	"tripdeck/internal/model"
)

// FormatHours formats a duration in hours, dropping a trailing ".0".
// e.g., 3.0 -> "3h", 3.5 -> "3.5h", 0.75 -> "0.8h"
func FormatHours(hours float64) string {
	s := fmt.Sprintf("%.1f", hours)
	s = strings.TrimSuffix(s, ".0")
	return s + "h"
}

// FormatDate renders a date as "Mon Mar 17".
func FormatDate(t time.Time) string {
	return t.Format("Mon Jan 2")
}

// FormatDateRange renders a stop's stay as "Mar 8 – Mar 10".
func FormatDateRange(start, end time.Time) string {
	return start.Format("Jan 2") + " – " + end.Format("Jan 2")
}

// FormatNights pluralizes a night count.
func FormatNights(n int) string {
	if n == 1 {
		return "1 night"
	}
	return fmt.Sprintf("%d nights", n)
}

// FormatStatus returns the display label for a day's booking status.
func FormatStatus(s model.Status) string {
	switch s {
	case model.StatusUnderbooked:
		return "underbooked"
	case model.StatusApproaching:
		return "approaching"
	case model.StatusFull:
		return "full"
	case model.StatusOverbooked:
		return "overbooked"
	default:
		return string(s)
	}
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatDuration renders an activity duration with its band.
// e.g., 1.5 -> "1.5h (short)", 3 -> "3h (medium)", 5 -> "5h (long)"
func FormatDuration(hours float64) string {
	band := "long"
	switch {
	case hours < 2:
		band = "short"
	case hours < 4:
		band = "medium"
	}
	return fmt.Sprintf("%s (%s)", FormatHours(hours), band)
}

// Truncate shortens a string to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	if max <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// InterestMark returns the catalog marker for an activity's interest flag.
func InterestMark(interested bool) string {
	if interested {
		return "★"
	}
	return "☆"
}

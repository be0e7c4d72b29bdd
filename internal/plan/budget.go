// Package plan holds the pure scheduling core: day generation, time-budget
// classification, the greedy day-suggestion heuristic, and catalog filters.
package plan

import "tripdeck/internal/model"

// Classify maps accumulated scheduled hours to a booking status relative to
// the daily budget. Bands are closed on the lower side; exactly at budget is
// full, never overbooked. Total for all inputs — negative hours are simply
// underbooked.
func Classify(totalHours, budget float64) model.Status {
	switch {
	case totalHours < budget*0.6:
		return model.StatusUnderbooked
	case totalHours < budget*0.9:
		return model.StatusApproaching
	case totalHours <= budget:
		return model.StatusFull
	default:
		return model.StatusOverbooked
	}
}

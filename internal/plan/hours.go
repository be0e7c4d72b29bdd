package plan

import "tripdeck/internal/model"

// TotalHours sums estimated durations over a day's activity list. Every
// mutation of a day's schedule stores this alongside the list so the cached
// total never drifts.
func TotalHours(activities []model.Activity) float64 {
	var sum float64
	for _, a := range activities {
		sum += a.EstimatedDurationHours
	}
	return sum
}

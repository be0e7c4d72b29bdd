package plan

import "tripdeck/internal/model"

// CitySummary aggregates the schedule for one stop.
type CitySummary struct {
	Stop           model.CityStop
	Days           int
	ActivityCount  int
	ScheduledHours float64
}

// RouteSummary aggregates the whole trip.
type RouteSummary struct {
	Days           int
	ActivityCount  int
	ScheduledHours float64
}

// SummarizeCity computes per-stop stats from the current day list. Days are
// matched by the stop's name, the same join the day generator uses.
func SummarizeCity(stop model.CityStop, days []model.Day) CitySummary {
	s := CitySummary{Stop: stop}
	for _, d := range days {
		if d.CityOrRegion != stop.Name {
			continue
		}
		s.Days++
		s.ActivityCount += len(d.ScheduledActivities)
		s.ScheduledHours += d.TotalScheduledHours
	}
	return s
}

// SummarizeRoute computes trip-wide stats.
func SummarizeRoute(days []model.Day) RouteSummary {
	var s RouteSummary
	for _, d := range days {
		s.Days++
		s.ActivityCount += len(d.ScheduledActivities)
		s.ScheduledHours += d.TotalScheduledHours
	}
	return s
}

package model

import (
	"fmt"
	"time"
)

// Day is one calendar day of the trip, owned by a city stop. The activity
// order is the day's running order. TotalScheduledHours is a derived cache:
// it always equals the sum of scheduled durations and is only ever written
// together with ScheduledActivities.
type Day struct {
	ID                  string
	Date                time.Time
	CityOrRegion        string
	ScheduledActivities []Activity
	TotalScheduledHours float64
}

// DayID derives the deterministic day identity from its owning stop and
// date. Regenerating days for an unchanged stop yields the same IDs, which
// is what lets assignments survive regeneration.
func DayID(stopID string, date time.Time) string {
	return fmt.Sprintf("day-%s-%s", stopID, date.Format(DateFormat))
}

// Scheduled reports whether the activity is already on the day.
func (d Day) Scheduled(activityID string) bool {
	for _, a := range d.ScheduledActivities {
		if a.ID == activityID {
			return true
		}
	}
	return false
}

package plan

import (
	"time"

	"tripdeck/internal/model"
)

// GenerateDays expands city stops into the flat day list. Each stop emits
// one empty day per calendar date from start to end inclusive; a stop whose
// end precedes its start emits nothing. Output keeps stop order, then date
// order within each stop — overlapping stop ranges are concatenated, not
// merged into a global date sort.
func GenerateDays(stops []model.CityStop) []model.Day {
	var days []model.Day
	for _, stop := range stops {
		for d := stop.StartDate; !d.After(stop.EndDate); d = d.AddDate(0, 0, 1) {
			days = append(days, model.Day{
				ID:           model.DayID(stop.ID, d),
				Date:         d,
				CityOrRegion: stop.Name,
			})
		}
	}
	return days
}

// Date parses a calendar-date string to UTC midnight.
func Date(s string) (time.Time, error) {
	return time.Parse(model.DateFormat, s)
}

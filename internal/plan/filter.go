package plan

import "tripdeck/internal/model"

// DurationBand buckets activities by estimated duration for catalog filters.
type DurationBand string

// Duration bands: short is under 2h, medium 2–4h, long 4h and up.
const (
	BandShort  DurationBand = "short"
	BandMedium DurationBand = "medium"
	BandLong   DurationBand = "long"
)

// ParseDurationBand matches a band name, or reports false.
func ParseDurationBand(s string) (DurationBand, bool) {
	switch DurationBand(s) {
	case BandShort, BandMedium, BandLong:
		return DurationBand(s), true
	}
	return "", false
}

func (b DurationBand) contains(hours float64) bool {
	switch b {
	case BandShort:
		return hours < 2
	case BandMedium:
		return hours >= 2 && hours < 4
	case BandLong:
		return hours >= 4
	}
	return false
}

// ForCity returns activities whose city matches the stop name exactly.
func ForCity(activities []model.Activity, city string) []model.Activity {
	var result []model.Activity
	for _, a := range activities {
		if a.CityOrRegion == city {
			result = append(result, a)
		}
	}
	return result
}

// ByCategory keeps activities of one category.
func ByCategory(activities []model.Activity, cat model.Category) []model.Activity {
	var result []model.Activity
	for _, a := range activities {
		if a.Category == cat {
			result = append(result, a)
		}
	}
	return result
}

// ByDuration keeps activities whose duration falls in the band.
func ByDuration(activities []model.Activity, band DurationBand) []model.Activity {
	var result []model.Activity
	for _, a := range activities {
		if band.contains(a.EstimatedDurationHours) {
			result = append(result, a)
		}
	}
	return result
}

// ByTimeOfDay keeps activities recommended for the slot. Flexible activities
// match every slot.
func ByTimeOfDay(activities []model.Activity, slot model.TimeOfDay) []model.Activity {
	var result []model.Activity
	for _, a := range activities {
		if a.RecommendedTimeOfDay == slot || a.RecommendedTimeOfDay == model.TimeFlexible {
			result = append(result, a)
		}
	}
	return result
}

// Interested keeps activities the user has marked.
func Interested(activities []model.Activity) []model.Activity {
	var result []model.Activity
	for _, a := range activities {
		if a.IsInterested {
			result = append(result, a)
		}
	}
	return result
}

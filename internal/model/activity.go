// Package model defines domain types for the tripdeck itinerary.
package model

import "strings"

// Category classifies an activity. Anchors are the big-ticket items the
// suggestion heuristic schedules first.
type Category string

// All activity categories.
const (
	CategoryFood     Category = "food"
	CategoryCulture  Category = "culture"
	CategoryOutdoors Category = "outdoors"
	CategoryNight    Category = "night"
	CategoryAnchor   Category = "anchor"
	CategoryRelax    Category = "relax"
	CategoryHistory  Category = "history"
	CategoryShopping Category = "shopping"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryCulture,
	CategoryOutdoors,
	CategoryNight,
	CategoryAnchor,
	CategoryRelax,
	CategoryHistory,
	CategoryShopping,
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// TimeOfDay is the recommended slot for an activity.
type TimeOfDay string

// Time-of-day slots. Flexible activities match any slot filter.
const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeFlexible  TimeOfDay = "flexible"
)

// ParseTimeOfDay matches a slot name case-insensitively.
func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	t := TimeOfDay(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TimeMorning, TimeAfternoon, TimeEvening, TimeFlexible:
		return t, true
	}
	return "", false
}

// Activity is one candidate item in the catalog. CityOrRegion joins to a
// CityStop by name, not by ID — day generation and cascading deletes depend
// on that.
type Activity struct {
	ID                     string
	CityOrRegion           string
	Title                  string
	Description            string
	Category               Category
	EstimatedDurationHours float64
	RecommendedTimeOfDay   TimeOfDay
	Notes                  string
	Link                   string
	IsInterested           bool
}

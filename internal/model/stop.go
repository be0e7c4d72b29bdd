package model

import (
	"strings"
	"time"
)

// Region is the broad part of the country a stop belongs to.
type Region string

// Regions, north to south.
const (
	RegionNorth   Region = "North"
	RegionCentral Region = "Central"
	RegionSouth   Region = "South"
)

// ParseRegion matches a region name case-insensitively.
func ParseRegion(s string) (Region, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north":
		return RegionNorth, true
	case "central":
		return RegionCentral, true
	case "south":
		return RegionSouth, true
	}
	return "", false
}

// CityStop is one leg of the route. Name must be unique among stops; it is
// the join key for activities and generated days. StartDate and EndDate are
// calendar dates (UTC midnight), inclusive on both ends.
type CityStop struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Region    Region
}

// Nights returns the number of days the stop spans, zero for malformed
// ranges where the end precedes the start.
func (s CityStop) Nights() int {
	if s.EndDate.Before(s.StartDate) {
		return 0
	}
	return int(s.EndDate.Sub(s.StartDate).Hours()/24) + 1
}

// DateFormat is the calendar-date layout used throughout.
const DateFormat = "2006-01-02"

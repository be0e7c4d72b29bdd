// Package seed supplies the startup itinerary data: a built-in sample trip
// and an optional user-authored TOML file. State is ephemeral — the store is
// rebuilt from seed on every run.
package seed

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"tripdeck/internal/model"
)

// Seed is the decoded startup data.
type Seed struct {
	Stops      []model.CityStop
	Activities []model.Activity
}

// file mirrors the TOML layout:
//
//	[[stop]]
//	name = "Hoi An"
//	start = "2026-03-10"
//	end = "2026-03-13"
//	region = "Central"
//
//	[[activity]]
//	city = "Hoi An"
//	title = "Ancient Houses & Japanese Bridge"
//	category = "anchor"
//	hours = 3.0
type file struct {
	Stops      []stopEntry     `toml:"stop"`
	Activities []activityEntry `toml:"activity"`
}

type stopEntry struct {
	ID     string `toml:"id,omitempty"`
	Name   string `toml:"name"`
	Start  string `toml:"start"`
	End    string `toml:"end"`
	Region string `toml:"region,omitempty"`
}

type activityEntry struct {
	ID          string  `toml:"id,omitempty"`
	City        string  `toml:"city"`
	Title       string  `toml:"title"`
	Description string  `toml:"description,omitempty"`
	Category    string  `toml:"category"`
	Hours       float64 `toml:"hours"`
	TimeOfDay   string  `toml:"time_of_day,omitempty"`
	Notes       string  `toml:"notes,omitempty"`
	Link        string  `toml:"link,omitempty"`
}

// FromFile reads and decodes a TOML seed file. Date parse failures are hard
// errors; soft problems (unknown category or slot, non-positive duration)
// degrade per entry so one bad line doesn't sink the catalog.
func FromFile(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("reading seed file: %w", err)
	}

	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return Seed{}, fmt.Errorf("parsing seed file: %w", err)
	}

	return f.build()
}

func (f file) build() (Seed, error) {
	var s Seed

	for _, e := range f.Stops {
		start, err := time.Parse(model.DateFormat, e.Start)
		if err != nil {
			return Seed{}, fmt.Errorf("stop %q: start date %q: %w", e.Name, e.Start, err)
		}
		end, err := time.Parse(model.DateFormat, e.End)
		if err != nil {
			return Seed{}, fmt.Errorf("stop %q: end date %q: %w", e.Name, e.End, err)
		}

		id := e.ID
		if id == "" {
			id = slug(e.Name)
		}
		region, _ := model.ParseRegion(e.Region)

		s.Stops = append(s.Stops, model.CityStop{
			ID:        id,
			Name:      e.Name,
			StartDate: start,
			EndDate:   end,
			Region:    region,
		})
	}

	for i, e := range f.Activities {
		if e.Hours <= 0 {
			continue
		}

		cat, ok := model.ParseCategory(e.Category)
		if !ok {
			cat = model.CategoryCulture
		}
		slot, ok := model.ParseTimeOfDay(e.TimeOfDay)
		if !ok {
			slot = model.TimeFlexible
		}

		id := e.ID
		if id == "" {
			id = fmt.Sprintf("%s-%d", slug(e.City), i+1)
		}

		s.Activities = append(s.Activities, model.Activity{
			ID:                     id,
			CityOrRegion:           e.City,
			Title:                  e.Title,
			Description:            e.Description,
			Category:               cat,
			EstimatedDurationHours: e.Hours,
			RecommendedTimeOfDay:   slot,
			Notes:                  e.Notes,
			Link:                   e.Link,
		})
	}

	return s, nil
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

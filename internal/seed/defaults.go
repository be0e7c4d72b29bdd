package seed

import (
	"time"

	"tripdeck/internal/model"
)

func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Default returns the built-in sample trip: a two-week Vietnam route,
// south to north. Used whenever no seed file is configured.
func Default() Seed {
	return Seed{Stops: defaultStops, Activities: defaultActivities}
}

var defaultStops = []model.CityStop{
	{ID: "hcmc", Name: "Ho Chi Minh City", StartDate: d(2026, time.March, 8), EndDate: d(2026, time.March, 10), Region: model.RegionSouth},
	{ID: "hoian", Name: "Hoi An", StartDate: d(2026, time.March, 10), EndDate: d(2026, time.March, 13), Region: model.RegionCentral},
	{ID: "phongnha", Name: "Phong Nha", StartDate: d(2026, time.March, 13), EndDate: d(2026, time.March, 15), Region: model.RegionCentral},
	{ID: "ninhbinh", Name: "Ninh Binh", StartDate: d(2026, time.March, 15), EndDate: d(2026, time.March, 17), Region: model.RegionNorth},
	{ID: "hanoi", Name: "Hanoi", StartDate: d(2026, time.March, 17), EndDate: d(2026, time.March, 21), Region: model.RegionNorth},
}

var defaultActivities = []model.Activity{
	{
		ID:                     "hcmc-1",
		CityOrRegion:           "Ho Chi Minh City",
		Title:                  "War Remnants Museum & Reunification Palace",
		Description:            "A sobering look at Vietnam's 20th-century history, from the museum's graphic exhibits to the palace frozen in 1970s decor.",
		Category:               model.CategoryHistory,
		EstimatedDurationHours: 3,
		RecommendedTimeOfDay:   model.TimeMorning,
		Notes:                  "Go early to avoid crowds.",
	},
	{
		ID:                     "hcmc-2",
		CityOrRegion:           "Ho Chi Minh City",
		Title:                  "Ben Thanh Market & Coffee Culture",
		Description:            "Wander the bustling market halls, then escape the heat with a ca phe sua da in one of Saigon's hidden cafes.",
		Category:               model.CategoryFood,
		EstimatedDurationHours: 2,
		RecommendedTimeOfDay:   model.TimeMorning,
	},
	{
		ID:                     "hcmc-3",
		CityOrRegion:           "Ho Chi Minh City",
		Title:                  "Cu Chi Tunnels",
		Description:            "Crawl through the vast underground network the Viet Cong lived and fought in, widened for visitors.",
		Category:               model.CategoryAnchor,
		EstimatedDurationHours: 4,
		RecommendedTimeOfDay:   model.TimeMorning,
		Notes:                  "Go early to beat crowds and midday heat.",
	},
	{
		ID:                     "hcmc-4",
		CityOrRegion:           "Ho Chi Minh City",
		Title:                  "Scooter Tour by Night",
		Description:            "Ride pillion on a guided night tour, zipping through backstreets and sampling the best street eats.",
		Category:               model.CategoryNight,
		EstimatedDurationHours: 3,
		RecommendedTimeOfDay:   model.TimeEvening,
	},
	{
		ID:                     "hoian-1",
		CityOrRegion:           "Hoi An",
		Title:                  "Ancient Houses & Japanese Bridge",
		Description:            "Stroll the lantern-lined streets, old merchant houses, and the iconic 16th-century covered bridge.",
		Category:               model.CategoryAnchor,
		EstimatedDurationHours: 3,
		RecommendedTimeOfDay:   model.TimeMorning,
		Notes:                  "Early morning is crowd-free; by night the Old Town glows with silk lanterns.",
	},
	{
		ID:                     "hoian-2",
		CityOrRegion:           "Hoi An",
		Title:                  "Lantern Lighting & Night Market",
		Description:            "Release paper lanterns onto the river and browse the nightly street market on Nguyen Hoang.",
		Category:               model.CategoryCulture,
		EstimatedDurationHours: 2,
		RecommendedTimeOfDay:   model.TimeEvening,
	},
	{
		ID:                     "hoian-3",
		CityOrRegion:           "Hoi An",
		Title:                  "Countryside Bicycle Ride",
		Description:            "Flat, scenic loop through rice paddies to Tra Que Vegetable Village or Cam Kim Island.",
		Category:               model.CategoryOutdoors,
		EstimatedDurationHours: 3,
		RecommendedTimeOfDay:   model.TimeMorning,
	},
	{
		ID:                     "hoian-4",
		CityOrRegion:           "Hoi An",
		Title:                  "An Bang Beach",
		Description:            "Ten minutes from town: gentle waves, thatched parasols, and a sunset drink at a beach bar.",
		Category:               model.CategoryRelax,
		EstimatedDurationHours: 3,
		RecommendedTimeOfDay:   model.TimeAfternoon,
	},
	{
		ID:                     "hoian-5",
		CityOrRegion:           "Hoi An",
		Title:                  "Tailoring & Crafts",
		Description:            "Custom clothing made in a day or two, plus pottery and lantern-making workshops.",
		Category:               model.CategoryShopping,
		EstimatedDurationHours: 2,
		RecommendedTimeOfDay:   model.TimeAfternoon,
	},
	{
		ID:                     "phongnha-1",
		CityOrRegion:           "Phong Nha",
		Title:                  "Paradise Cave",
		Description:            "A wooden boardwalk runs a kilometer into dramatically lit chambers up to thirty meters high.",
		Category:               model.CategoryAnchor,
		EstimatedDurationHours: 4,
		RecommendedTimeOfDay:   model.TimeMorning,
	},
	{
		ID:                     "phongnha-2",
		CityOrRegion:           "Phong Nha",
		Title:                  "Phong Nha Cave Boat Tour",
		Description:            "Glide up the Son River between karst cliffs, then paddle a kilometer and a half into the cave itself.",
		Category:               model.CategoryOutdoors,
		EstimatedDurationHours: 3,
		RecommendedTimeOfDay:   model.TimeMorning,
	},
	{
		ID:                     "phongnha-3",
		CityOrRegion:           "Phong Nha",
		Title:                  "The Pub With Cold Beer",
		Description:            "Rustic riverside spot with hammocks, a river to swim in, and farm-to-table food.",
		Category:               model.CategoryRelax,
		EstimatedDurationHours: 2,
		RecommendedTimeOfDay:   model.TimeAfternoon,
	},
	{
		ID:                     "ninhbinh-1",
		CityOrRegion:           "Ninh Binh",
		Title:                  "Tam Coc Boat Ride",
		Description:            "Rowed by foot down the river through bright-green rice fields and a series of low-ceiling caves.",
		Category:               model.CategoryAnchor,
		EstimatedDurationHours: 2,
		RecommendedTimeOfDay:   model.TimeMorning,
		Notes:                  "Go around 7-8 AM for calm light and no midday heat.",
	},
	{
		ID:                     "ninhbinh-2",
		CityOrRegion:           "Ninh Binh",
		Title:                  "Mua Cave Viewpoint",
		Description:            "Five hundred stone steps to a dragon-crowned summit with a panoramic view over the Tam Coc valley.",
		Category:               model.CategoryOutdoors,
		EstimatedDurationHours: 1.5,
		RecommendedTimeOfDay:   model.TimeAfternoon,
	},
	{
		ID:                     "ninhbinh-3",
		CityOrRegion:           "Ninh Binh",
		Title:                  "Ancient Capital Hoa Lu",
		Description:            "Tenth-century capital with temples to the Dinh and Le emperors against a karst backdrop.",
		Category:               model.CategoryHistory,
		EstimatedDurationHours: 1.5,
		RecommendedTimeOfDay:   model.TimeAfternoon,
	},
	{
		ID:                     "hanoi-1",
		CityOrRegion:           "Hanoi",
		Title:                  "Old Quarter & Hoan Kiem Lake",
		Description:            "The 36 Streets, each named for its trade, and the lake at the spiritual heart of the city.",
		Category:               model.CategoryAnchor,
		EstimatedDurationHours: 3,
		RecommendedTimeOfDay:   model.TimeMorning,
		Notes:                  "Try an egg coffee at Cafe Giang.",
	},
	{
		ID:                     "hanoi-2",
		CityOrRegion:           "Hanoi",
		Title:                  "Temple of Literature",
		Description:            "Vietnam's first university, a serene walled courtyard complex from 1076.",
		Category:               model.CategoryCulture,
		EstimatedDurationHours: 1.5,
		RecommendedTimeOfDay:   model.TimeAfternoon,
	},
	{
		ID:                     "hanoi-3",
		CityOrRegion:           "Hanoi",
		Title:                  "Street Food Tour",
		Description:            "Pho, banh mi, bun rieu, fresh spring rolls — a guided evening walk through the legendary stalls.",
		Category:               model.CategoryFood,
		EstimatedDurationHours: 3,
		RecommendedTimeOfDay:   model.TimeEvening,
	},
	{
		ID:                     "hanoi-4",
		CityOrRegion:           "Hanoi",
		Title:                  "Water Puppet Theater",
		Description:            "Lacquered wooden puppets over a water stage, folklore scenes set to live music.",
		Category:               model.CategoryCulture,
		EstimatedDurationHours: 1,
		RecommendedTimeOfDay:   model.TimeEvening,
	},
	{
		ID:                     "hanoi-5",
		CityOrRegion:           "Hanoi",
		Title:                  "Weekend Night Market",
		Description:            "Friday-to-Sunday market along Hang Dao: lacquerware, silk scarves, coffee beans, snacks.",
		Category:               model.CategoryShopping,
		EstimatedDurationHours: 1.5,
		RecommendedTimeOfDay:   model.TimeEvening,
	},
}

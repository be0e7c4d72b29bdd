package itinerary

import (
	"testing"
	"time"

	"tripdeck/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateFormat, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func testStore(t *testing.T) *Store {
	t.Helper()
	stops := []model.CityStop{
		{ID: "hcmc", Name: "Ho Chi Minh City", StartDate: mustDate(t, "2026-03-08"), EndDate: mustDate(t, "2026-03-10"), Region: model.RegionSouth},
		{ID: "hanoi", Name: "Hanoi", StartDate: mustDate(t, "2026-03-17"), EndDate: mustDate(t, "2026-03-19"), Region: model.RegionNorth},
	}
	activities := []model.Activity{
		{ID: "hcmc-museum", CityOrRegion: "Ho Chi Minh City", Title: "War Remnants Museum", Category: model.CategoryHistory, EstimatedDurationHours: 3},
		{ID: "hcmc-market", CityOrRegion: "Ho Chi Minh City", Title: "Ben Thanh Market", Category: model.CategoryFood, EstimatedDurationHours: 2},
		{ID: "hcmc-tunnels", CityOrRegion: "Ho Chi Minh City", Title: "Cu Chi Tunnels", Category: model.CategoryAnchor, EstimatedDurationHours: 4},
		{ID: "hanoi-lake", CityOrRegion: "Hanoi", Title: "Hoan Kiem Lake", Category: model.CategoryAnchor, EstimatedDurationHours: 3},
		{ID: "hanoi-food", CityOrRegion: "Hanoi", Title: "Street Food Tour", Category: model.CategoryFood, EstimatedDurationHours: 3},
	}
	return New(stops, activities, 10)
}

func firstDayID(t *testing.T, s *Store, city string) string {
	t.Helper()
	days := s.DaysForCity(city)
	if len(days) == 0 {
		t.Fatalf("no days for %s", city)
	}
	return days[0].ID
}

func TestNew_GeneratesDaysAndSortsStops(t *testing.T) {
	stops := []model.CityStop{
		{ID: "later", Name: "Later", StartDate: mustDate(t, "2026-03-17"), EndDate: mustDate(t, "2026-03-18")},
		{ID: "earlier", Name: "Earlier", StartDate: mustDate(t, "2026-03-08"), EndDate: mustDate(t, "2026-03-09")},
	}
	s := New(stops, nil, 10)

	got := s.Stops()
	if got[0].ID != "earlier" || got[1].ID != "later" {
		t.Fatalf("stops not sorted by start date: %v, %v", got[0].ID, got[1].ID)
	}
	if len(s.Days()) != 4 {
		t.Fatalf("got %d days, want 4", len(s.Days()))
	}
}

func TestToggleInterest(t *testing.T) {
	s := testStore(t)

	s.ToggleInterest("hcmc-museum")
	a, _ := s.ActivityByID("hcmc-museum")
	if !a.IsInterested {
		t.Fatal("interest not set")
	}

	s.ToggleInterest("hcmc-museum")
	a, _ = s.ActivityByID("hcmc-museum")
	if a.IsInterested {
		t.Fatal("interest not cleared on second toggle")
	}

	// Unknown ID is a no-op, not a panic
	s.ToggleInterest("nope")
}

func TestAssign_AppendsAndRecomputesHours(t *testing.T) {
	s := testStore(t)
	dayID := firstDayID(t, s, "Ho Chi Minh City")

	s.Assign("hcmc-museum", dayID)
	s.Assign("hcmc-market", dayID)

	day, _ := s.DayByID(dayID)
	if len(day.ScheduledActivities) != 2 {
		t.Fatalf("got %d scheduled, want 2", len(day.ScheduledActivities))
	}
	if day.TotalScheduledHours != 5 {
		t.Fatalf("hours = %v, want 5", day.TotalScheduledHours)
	}
}

func TestAssign_Idempotent(t *testing.T) {
	s := testStore(t)
	dayID := firstDayID(t, s, "Ho Chi Minh City")

	s.Assign("hcmc-museum", dayID)
	s.Assign("hcmc-museum", dayID)

	day, _ := s.DayByID(dayID)
	if len(day.ScheduledActivities) != 1 {
		t.Fatalf("got %d scheduled after double assign, want 1", len(day.ScheduledActivities))
	}
	if day.TotalScheduledHours != 3 {
		t.Fatalf("hours = %v, want 3", day.TotalScheduledHours)
	}
}

func TestAssign_DoesNotEnforceBudget(t *testing.T) {
	s := testStore(t)
	dayID := firstDayID(t, s, "Ho Chi Minh City")

	// 3 + 2 + 4 = 9, then assign across budget anyway
	s.Assign("hcmc-museum", dayID)
	s.Assign("hcmc-market", dayID)
	s.Assign("hcmc-tunnels", dayID)
	s.Assign("hanoi-food", dayID) // cross-city assign is allowed by the store

	day, _ := s.DayByID(dayID)
	if day.TotalScheduledHours != 12 {
		t.Fatalf("hours = %v, want 12 (overbooking allowed)", day.TotalScheduledHours)
	}
}

func TestRemove(t *testing.T) {
	s := testStore(t)
	dayID := firstDayID(t, s, "Ho Chi Minh City")

	s.Assign("hcmc-museum", dayID)
	s.Remove("hcmc-museum", dayID)

	day, _ := s.DayByID(dayID)
	if len(day.ScheduledActivities) != 0 || day.TotalScheduledHours != 0 {
		t.Fatalf("day not empty after remove: %d activities, %v hours",
			len(day.ScheduledActivities), day.TotalScheduledHours)
	}

	// Absent activity and unknown day are no-ops
	s.Remove("hcmc-museum", dayID)
	s.Remove("hcmc-museum", "no-such-day")
}

func TestMove_BetweenDays(t *testing.T) {
	s := testStore(t)
	days := s.DaysForCity("Ho Chi Minh City")
	from, to := days[0].ID, days[1].ID

	s.Assign("hcmc-museum", from)
	s.Move("hcmc-museum", from, to)

	fromDay, _ := s.DayByID(from)
	toDay, _ := s.DayByID(to)
	if len(fromDay.ScheduledActivities) != 0 || fromDay.TotalScheduledHours != 0 {
		t.Fatalf("source day not cleared: %v hours", fromDay.TotalScheduledHours)
	}
	if len(toDay.ScheduledActivities) != 1 || toDay.TotalScheduledHours != 3 {
		t.Fatalf("destination day wrong: %d activities, %v hours",
			len(toDay.ScheduledActivities), toDay.TotalScheduledHours)
	}
}

func TestMove_SameDayIsNetNoop(t *testing.T) {
	s := testStore(t)
	dayID := firstDayID(t, s, "Ho Chi Minh City")

	s.Assign("hcmc-museum", dayID)
	s.Assign("hcmc-market", dayID)
	s.Move("hcmc-museum", dayID, dayID)

	day, _ := s.DayByID(dayID)
	if len(day.ScheduledActivities) != 2 || day.ScheduledActivities[0].ID != "hcmc-museum" {
		t.Fatalf("same-day move changed the schedule: %v", day.ScheduledActivities)
	}
}

func TestMove_DestinationAlreadyHasActivity(t *testing.T) {
	s := testStore(t)
	days := s.DaysForCity("Ho Chi Minh City")
	from, to := days[0].ID, days[1].ID

	s.Assign("hcmc-museum", from)
	s.Assign("hcmc-museum", to)
	s.Move("hcmc-museum", from, to)

	fromDay, _ := s.DayByID(from)
	toDay, _ := s.DayByID(to)
	if len(fromDay.ScheduledActivities) != 0 {
		t.Fatal("source still has the activity")
	}
	if len(toDay.ScheduledActivities) != 1 {
		t.Fatalf("destination has %d copies, want 1", len(toDay.ScheduledActivities))
	}
}

func TestReorder_DropsUnknownIDs(t *testing.T) {
	s := testStore(t)
	dayID := firstDayID(t, s, "Ho Chi Minh City")

	s.Assign("hcmc-museum", dayID)
	s.Assign("hcmc-market", dayID)

	s.Reorder(dayID, []string{"hcmc-market", "hcmc-tunnels", "hcmc-museum"})

	day, _ := s.DayByID(dayID)
	if len(day.ScheduledActivities) != 2 {
		t.Fatalf("got %d scheduled, want 2 (unknown id must be dropped, not inserted)",
			len(day.ScheduledActivities))
	}
	if day.ScheduledActivities[0].ID != "hcmc-market" || day.ScheduledActivities[1].ID != "hcmc-museum" {
		t.Fatalf("order = [%s %s], want [hcmc-market hcmc-museum]",
			day.ScheduledActivities[0].ID, day.ScheduledActivities[1].ID)
	}
	if day.TotalScheduledHours != 5 {
		t.Fatalf("hours = %v, want 5", day.TotalScheduledHours)
	}
}

func TestReorder_OmittedIDIsRemoved(t *testing.T) {
	s := testStore(t)
	dayID := firstDayID(t, s, "Ho Chi Minh City")

	s.Assign("hcmc-museum", dayID)
	s.Assign("hcmc-market", dayID)
	s.Reorder(dayID, []string{"hcmc-market"})

	day, _ := s.DayByID(dayID)
	if len(day.ScheduledActivities) != 1 || day.TotalScheduledHours != 2 {
		t.Fatalf("got %d activities / %v hours, want 1 / 2",
			len(day.ScheduledActivities), day.TotalScheduledHours)
	}
}

func TestSuggestDay_AppendsWithinBudget(t *testing.T) {
	s := testStore(t)
	dayID := firstDayID(t, s, "Ho Chi Minh City")

	s.SuggestDay(dayID)

	day, _ := s.DayByID(dayID)
	if len(day.ScheduledActivities) == 0 {
		t.Fatal("suggestion picked nothing")
	}
	// Anchor first: Cu Chi Tunnels (4h), then fillers ascending: market (2h),
	// museum (3h). 4+2+3 = 9 <= 10.
	want := []string{"hcmc-tunnels", "hcmc-market", "hcmc-museum"}
	if len(day.ScheduledActivities) != len(want) {
		t.Fatalf("got %d activities, want %d", len(day.ScheduledActivities), len(want))
	}
	for i, id := range want {
		if day.ScheduledActivities[i].ID != id {
			t.Fatalf("position %d = %s, want %s", i, day.ScheduledActivities[i].ID, id)
		}
	}
	if day.TotalScheduledHours != 9 {
		t.Fatalf("hours = %v, want 9", day.TotalScheduledHours)
	}
}

func TestSuggestDay_SkipsAlreadyScheduled(t *testing.T) {
	s := testStore(t)
	dayID := firstDayID(t, s, "Ho Chi Minh City")

	s.Assign("hcmc-tunnels", dayID)
	s.SuggestDay(dayID)

	day, _ := s.DayByID(dayID)
	seen := make(map[string]int)
	for _, a := range day.ScheduledActivities {
		seen[a.ID]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Fatalf("activity %s scheduled %d times", id, n)
		}
	}
}

func TestCreateActivity_FreshIDAndClearedInterest(t *testing.T) {
	s := testStore(t)

	created := s.CreateActivity(model.Activity{
		CityOrRegion:           "Hanoi",
		Title:                  "Water Puppet Theater",
		Category:               model.CategoryCulture,
		EstimatedDurationHours: 1,
		IsInterested:           true, // must be cleared
	})

	if created.ID == "" {
		t.Fatal("no ID assigned")
	}
	if created.IsInterested {
		t.Fatal("interest flag not cleared on creation")
	}
	got, ok := s.ActivityByID(created.ID)
	if !ok || got.Title != "Water Puppet Theater" {
		t.Fatalf("created activity not in catalog: %+v", got)
	}
}

func TestAddCityStop_SortsAndRegenerates(t *testing.T) {
	s := testStore(t)
	hanoiDay := firstDayID(t, s, "Hanoi")
	s.Assign("hanoi-lake", hanoiDay)

	added := s.AddCityStop(model.CityStop{
		Name:      "Hoi An",
		StartDate: mustDate(t, "2026-03-10"),
		EndDate:   mustDate(t, "2026-03-13"),
		Region:    model.RegionCentral,
	})
	if added.ID == "" {
		t.Fatal("no ID assigned")
	}

	stops := s.Stops()
	if stops[1].Name != "Hoi An" {
		t.Fatalf("stop order = [%s %s %s], want Hoi An in the middle",
			stops[0].Name, stops[1].Name, stops[2].Name)
	}
	if got := len(s.DaysForCity("Hoi An")); got != 4 {
		t.Fatalf("got %d Hoi An days, want 4", got)
	}

	// Assignments on surviving days carry over
	day, _ := s.DayByID(hanoiDay)
	if len(day.ScheduledActivities) != 1 || day.TotalScheduledHours != 3 {
		t.Fatalf("Hanoi assignment lost on regeneration: %d activities, %v hours",
			len(day.ScheduledActivities), day.TotalScheduledHours)
	}
}

func TestUpdateCityStop_RegionOnlyEditKeepsDays(t *testing.T) {
	s := testStore(t)
	dayID := firstDayID(t, s, "Ho Chi Minh City")
	s.Assign("hcmc-museum", dayID)

	region := model.RegionCentral
	s.UpdateCityStop("hcmc", StopUpdate{Region: &region})

	stop, _ := s.StopByID("hcmc")
	if stop.Region != model.RegionCentral {
		t.Fatalf("region = %s, want Central", stop.Region)
	}
	day, _ := s.DayByID(dayID)
	if len(day.ScheduledActivities) != 1 {
		t.Fatal("region-only edit must not regenerate days")
	}
}

func TestUpdateCityStop_DateChangeRegenerates(t *testing.T) {
	s := testStore(t)
	dayID := firstDayID(t, s, "Ho Chi Minh City")
	s.Assign("hcmc-museum", dayID)

	end := mustDate(t, "2026-03-12")
	s.UpdateCityStop("hcmc", StopUpdate{EndDate: &end})

	if got := len(s.DaysForCity("Ho Chi Minh City")); got != 5 {
		t.Fatalf("got %d days after extending, want 5", got)
	}
	// The original day survives with its assignment intact
	day, ok := s.DayByID(dayID)
	if !ok {
		t.Fatal("first day vanished after date extension")
	}
	if len(day.ScheduledActivities) != 1 {
		t.Fatal("assignment lost on surviving day")
	}
}

func TestUpdateCityStop_ShrinkDropsAssignmentsOnRemovedDays(t *testing.T) {
	s := testStore(t)
	days := s.DaysForCity("Ho Chi Minh City")
	last := days[len(days)-1].ID
	s.Assign("hcmc-museum", last)

	end := mustDate(t, "2026-03-08")
	s.UpdateCityStop("hcmc", StopUpdate{EndDate: &end})

	if _, ok := s.DayByID(last); ok {
		t.Fatal("removed day still present")
	}
	// The activity itself survives in the catalog
	if _, ok := s.ActivityByID("hcmc-museum"); !ok {
		t.Fatal("catalog entry lost with its day")
	}
}

func TestUpdateCityStop_RenameReKeysDays(t *testing.T) {
	s := testStore(t)
	dayID := firstDayID(t, s, "Ho Chi Minh City")
	s.Assign("hcmc-museum", dayID)

	name := "Saigon"
	s.UpdateCityStop("hcmc", StopUpdate{Name: &name})

	if got := len(s.DaysForCity("Ho Chi Minh City")); got != 0 {
		t.Fatalf("%d days still keyed to the old name", got)
	}
	days := s.DaysForCity("Saigon")
	if len(days) != 3 {
		t.Fatalf("got %d Saigon days, want 3", len(days))
	}
	// Day IDs derive from stop ID + date, so the assignment survives the
	// rename even though the city label changed.
	day, _ := s.DayByID(dayID)
	if day.CityOrRegion != "Saigon" || len(day.ScheduledActivities) != 1 {
		t.Fatalf("renamed day = %q with %d activities, want Saigon with 1",
			day.CityOrRegion, len(day.ScheduledActivities))
	}
}

func TestDeleteCityStop_CascadesByName(t *testing.T) {
	s := testStore(t)
	s.ToggleInterest("hanoi-lake")

	s.DeleteCityStop("hcmc")

	if _, ok := s.StopByID("hcmc"); ok {
		t.Fatal("stop still present")
	}
	if got := len(s.DaysForCity("Ho Chi Minh City")); got != 0 {
		t.Fatalf("%d orphan days left", got)
	}
	for _, a := range s.Activities() {
		if a.CityOrRegion == "Ho Chi Minh City" {
			t.Fatalf("orphan activity %s left in catalog", a.ID)
		}
	}

	// Other cities untouched, including user interest flags
	if got := len(s.DaysForCity("Hanoi")); got != 3 {
		t.Fatalf("Hanoi days = %d, want 3", got)
	}
	a, ok := s.ActivityByID("hanoi-lake")
	if !ok || !a.IsInterested {
		t.Fatal("unrelated activity or its interest flag lost")
	}
}

func TestSnapshot_UnaffectedByLaterMutations(t *testing.T) {
	s := testStore(t)
	dayID := firstDayID(t, s, "Ho Chi Minh City")
	s.Assign("hcmc-museum", dayID)

	snap := s.Snapshot()
	s.Assign("hcmc-market", dayID)
	s.ToggleInterest("hcmc-museum")

	for _, d := range snap.Days {
		if d.ID == dayID {
			if len(d.ScheduledActivities) != 1 || d.TotalScheduledHours != 3 {
				t.Fatalf("snapshot mutated: %d activities, %v hours",
					len(d.ScheduledActivities), d.TotalScheduledHours)
			}
		}
	}
	for _, a := range snap.Activities {
		if a.ID == "hcmc-museum" && a.IsInterested {
			t.Fatal("snapshot saw later interest toggle")
		}
	}
}

func TestActivitiesForCity(t *testing.T) {
	s := testStore(t)

	got := s.ActivitiesForCity("Hanoi")
	if len(got) != 2 {
		t.Fatalf("got %d Hanoi activities, want 2", len(got))
	}
	for _, a := range got {
		if a.CityOrRegion != "Hanoi" {
			t.Fatalf("activity %s belongs to %s", a.ID, a.CityOrRegion)
		}
	}

	if got := s.ActivitiesForCity("Nowhere"); len(got) != 0 {
		t.Fatalf("unknown city returned %d activities", len(got))
	}
}

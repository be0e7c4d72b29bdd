package tui

import (
	"testing"
	"time"

	"tripdeck/internal/itinerary"
	"tripdeck/internal/model"
	"tripdeck/internal/tui/components"
)

func testApp(t *testing.T) App {
	t.Helper()

	day := func(s string) time.Time {
		d, err := time.Parse(model.DateFormat, s)
		if err != nil {
			t.Fatalf("bad date %q: %v", s, err)
		}
		return d
	}

	stops := []model.CityStop{
		{ID: "hanoi", Name: "Hanoi", StartDate: day("2026-03-17"), EndDate: day("2026-03-19"), Region: model.RegionNorth},
	}
	activities := []model.Activity{
		{ID: "hanoi-walk", CityOrRegion: "Hanoi", Title: "Old Quarter", Category: model.CategoryAnchor, EstimatedDurationHours: 3},
		{ID: "hanoi-food", CityOrRegion: "Hanoi", Title: "Street Food", Category: model.CategoryFood, EstimatedDurationHours: 3},
		{ID: "hanoi-temple", CityOrRegion: "Hanoi", Title: "Temple of Literature", Category: model.CategoryCulture, EstimatedDurationHours: 1.5},
	}

	store := itinerary.New(stops, activities, 10)
	return NewApp(store, "Hanoi")
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < len(components.Tabs); active++ {
		a := App{activeTab: active}
		pos := 1 // leading space

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < len(components.Tabs)-1 {
				pos += 2 // separator
			}
		}
	}
}

func TestSuggestKeyFillsSelectedDay(t *testing.T) {
	a := testApp(t)
	a.activeTab = tabDays

	m, _, handled := a.updateDaysKeys("s")
	if !handled {
		t.Fatal("s should be handled by the days tab")
	}
	a = m.(App)

	day := a.visibleDays()[0]
	if len(day.ScheduledActivities) == 0 {
		t.Fatal("suggest left the day empty")
	}
	if day.TotalScheduledHours > a.store.Budget() {
		t.Fatalf("suggested %vh exceeds budget", day.TotalScheduledHours)
	}
}

func TestScheduleReorderAndRemove(t *testing.T) {
	a := testApp(t)
	a.activeTab = tabDays

	day := a.visibleDays()[0]
	a.store.Assign("hanoi-walk", day.ID)
	a.store.Assign("hanoi-food", day.ID)

	a.daysTab.focusSched = true
	a.daysTab.schedCursor = 0

	m, _, _ := a.updateScheduleKeys("J")
	a = m.(App)

	got := a.visibleDays()[0].ScheduledActivities
	if got[0].ID != "hanoi-food" || got[1].ID != "hanoi-walk" {
		t.Fatalf("after J: order = [%s %s]", got[0].ID, got[1].ID)
	}
	if a.daysTab.schedCursor != 1 {
		t.Fatalf("cursor should follow the moved activity, got %d", a.daysTab.schedCursor)
	}

	m, _, _ = a.updateScheduleKeys("x")
	a = m.(App)

	got = a.visibleDays()[0].ScheduledActivities
	if len(got) != 1 || got[0].ID != "hanoi-food" {
		t.Fatalf("after x: schedule = %v", got)
	}
}

func TestInterestToggleFromActivitiesTab(t *testing.T) {
	a := testApp(t)
	a.activeTab = tabActivities
	a.acts.cursor = 0

	m, _, handled := a.updateActivitiesKeys(" ")
	if !handled {
		t.Fatal("space should be handled by the activities tab")
	}
	a = m.(App)

	act := a.visibleActivities()[0]
	stored, _ := a.store.ActivityByID(act.ID)
	if !stored.IsInterested {
		t.Fatal("space did not toggle interest")
	}
}

func TestAssignPrefersDayWithRoom(t *testing.T) {
	a := testApp(t)

	days := a.store.DaysForCity("Hanoi")
	// Fill the first day to the brim so assignment overflows to day two
	a.store.Assign("hanoi-walk", days[0].ID)
	a.store.Assign("hanoi-food", days[0].ID)
	a.store.CreateActivity(model.Activity{
		CityOrRegion:           "Hanoi",
		Title:                  "Long Museum Day",
		Category:               model.CategoryCulture,
		EstimatedDurationHours: 5,
	})

	var long model.Activity
	for _, act := range a.store.Activities() {
		if act.Title == "Long Museum Day" {
			long = act
		}
	}

	dayID := a.firstOpenDayFor(long)
	if dayID != days[1].ID {
		t.Fatalf("firstOpenDayFor = %q, want second day %q", dayID, days[1].ID)
	}
}

func TestCycleFocusCityWraps(t *testing.T) {
	a := testApp(t)
	a.store.AddCityStop(model.CityStop{
		Name:      "Hue",
		StartDate: time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 21, 0, 0, 0, 0, time.UTC),
		Region:    model.RegionCentral,
	})

	a.cycleFocusCity()
	if a.focusCity != "Hue" {
		t.Fatalf("focus = %q, want Hue", a.focusCity)
	}
	a.cycleFocusCity()
	if a.focusCity != "Hanoi" {
		t.Fatalf("focus = %q, want wrap to Hanoi", a.focusCity)
	}
}

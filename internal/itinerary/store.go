// Package itinerary owns the mutable trip aggregate: city stops, the
// activity catalog, and the generated days. One logical writer drives
// sequential operations; every mutation replaces whole Day values so a
// snapshot taken at any point stays internally consistent.
package itinerary

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"tripdeck/internal/model"
	"tripdeck/internal/plan"
)

// Store holds the itinerary state. Operations referencing a missing
// activity, day, or stop ID are no-ops, never errors — the worst case is an
// unchanged aggregate.
type Store struct {
	stops      []model.CityStop
	activities []model.Activity
	days       []model.Day
	budget     float64
}

// Snapshot is a read-only view of the aggregate. Slices are copies; the
// store never mutates a Day's activity slice in place, so holding a
// snapshot across later operations is safe.
type Snapshot struct {
	Stops      []model.CityStop
	Activities []model.Activity
	Days       []model.Day
}

// New builds a store from seed data, sorts stops by start date, and
// generates the day list. budgetHours is the daily time budget used by day
// suggestion and status classification.
func New(stops []model.CityStop, activities []model.Activity, budgetHours float64) *Store {
	s := &Store{
		stops:      append([]model.CityStop(nil), stops...),
		activities: append([]model.Activity(nil), activities...),
		budget:     budgetHours,
	}
	s.sortStops()
	s.days = plan.GenerateDays(s.stops)
	return s
}

// Budget returns the daily time budget in hours.
func (s *Store) Budget() float64 { return s.budget }

// SetBudget changes the daily time budget. Existing assignments are never
// rejected; only their classification changes.
func (s *Store) SetBudget(hours float64) { s.budget = hours }

// Snapshot returns a consistent copy of the current state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Stops:      append([]model.CityStop(nil), s.stops...),
		Activities: append([]model.Activity(nil), s.activities...),
		Days:       append([]model.Day(nil), s.days...),
	}
}

// Stops returns the city stops in start-date order.
func (s *Store) Stops() []model.CityStop {
	return append([]model.CityStop(nil), s.stops...)
}

// Activities returns the full catalog.
func (s *Store) Activities() []model.Activity {
	return append([]model.Activity(nil), s.activities...)
}

// Days returns all days, in stop order then date order.
func (s *Store) Days() []model.Day {
	return append([]model.Day(nil), s.days...)
}

// DaysForCity returns the days whose city matches the stop name.
func (s *Store) DaysForCity(city string) []model.Day {
	var result []model.Day
	for _, d := range s.days {
		if d.CityOrRegion == city {
			result = append(result, d)
		}
	}
	return result
}

// ActivitiesForCity returns catalog entries for one stop name.
func (s *Store) ActivitiesForCity(city string) []model.Activity {
	return plan.ForCity(s.activities, city)
}

// DayByID looks up a day.
func (s *Store) DayByID(dayID string) (model.Day, bool) {
	if i := s.dayIndex(dayID); i >= 0 {
		return s.days[i], true
	}
	return model.Day{}, false
}

// StopByID looks up a city stop.
func (s *Store) StopByID(stopID string) (model.CityStop, bool) {
	if i := s.stopIndex(stopID); i >= 0 {
		return s.stops[i], true
	}
	return model.CityStop{}, false
}

// ActivityByID looks up a catalog entry.
func (s *Store) ActivityByID(activityID string) (model.Activity, bool) {
	if i := s.activityIndex(activityID); i >= 0 {
		return s.activities[i], true
	}
	return model.Activity{}, false
}

// ToggleInterest flips the interested flag on a catalog entry. No-op when
// the ID is unknown. Copies already scheduled on days keep their flag as of
// assignment time.
func (s *Store) ToggleInterest(activityID string) {
	if i := s.activityIndex(activityID); i >= 0 {
		s.activities[i].IsInterested = !s.activities[i].IsInterested
	}
}

// Assign appends a catalog activity to a day's schedule. Idempotent: a
// second assign of the same pair changes nothing. The budget is never
// enforced here — overbooking only shows up in classification.
func (s *Store) Assign(activityID, dayID string) {
	ai := s.activityIndex(activityID)
	di := s.dayIndex(dayID)
	if ai < 0 || di < 0 {
		return
	}
	day := s.days[di]
	if day.Scheduled(activityID) {
		return
	}
	s.setSchedule(di, appendActivity(day.ScheduledActivities, s.activities[ai]))
}

// Remove takes an activity off a day's schedule. No-op when absent.
func (s *Store) Remove(activityID, dayID string) {
	di := s.dayIndex(dayID)
	if di < 0 {
		return
	}
	day := s.days[di]
	if !day.Scheduled(activityID) {
		return
	}
	s.setSchedule(di, withoutActivity(day.ScheduledActivities, activityID))
}

// Move removes an activity from one day and appends it to another, unless
// the destination already has it. Moving within the same day is a net
// no-op.
func (s *Store) Move(activityID, fromDayID, toDayID string) {
	if fromDayID == toDayID {
		return
	}
	fi := s.dayIndex(fromDayID)
	ti := s.dayIndex(toDayID)
	if fi < 0 || ti < 0 {
		return
	}

	from := s.days[fi]
	if !from.Scheduled(activityID) {
		return
	}
	moved, ok := scheduledByID(from.ScheduledActivities, activityID)
	if !ok {
		return
	}

	s.setSchedule(fi, withoutActivity(from.ScheduledActivities, activityID))
	if !s.days[ti].Scheduled(activityID) {
		s.setSchedule(ti, appendActivity(s.days[ti].ScheduledActivities, moved))
	}
}

// Reorder replaces a day's schedule with the activities matching the given
// IDs, in that order. IDs not currently on the day are dropped silently;
// nothing new is ever inserted.
func (s *Store) Reorder(dayID string, orderedActivityIDs []string) {
	di := s.dayIndex(dayID)
	if di < 0 {
		return
	}
	day := s.days[di]

	reordered := make([]model.Activity, 0, len(day.ScheduledActivities))
	for _, id := range orderedActivityIDs {
		if a, ok := scheduledByID(day.ScheduledActivities, id); ok {
			reordered = append(reordered, a)
		}
	}
	s.setSchedule(di, reordered)
}

// SuggestDay greedily fills a day from the city's unscheduled activities
// and appends the result to whatever is already scheduled. The heuristic
// runs against the full daily budget, not the day's remaining room, which
// matches how a freshly suggested day is meant to look.
func (s *Store) SuggestDay(dayID string) {
	di := s.dayIndex(dayID)
	if di < 0 {
		return
	}
	day := s.days[di]

	var available []model.Activity
	for _, a := range plan.ForCity(s.activities, day.CityOrRegion) {
		if !day.Scheduled(a.ID) {
			available = append(available, a)
		}
	}

	picked := plan.Suggest(available, s.budget)
	if len(picked) == 0 {
		return
	}
	s.setSchedule(di, append(appendActivity(day.ScheduledActivities), picked...))
}

// CreateActivity adds a user-authored activity to the catalog with a fresh
// ID and the interested flag cleared. Returns the stored value.
func (s *Store) CreateActivity(data model.Activity) model.Activity {
	data.ID = uuid.NewString()
	data.IsInterested = false
	s.activities = append(s.activities, data)
	return data
}

// AddCityStop inserts a new stop with a fresh ID, keeps stops sorted by
// start date, and regenerates the day list. Returns the stored value.
func (s *Store) AddCityStop(data model.CityStop) model.CityStop {
	data.ID = uuid.NewString()
	s.stops = append(s.stops, data)
	s.sortStops()
	s.regenerateDays()
	return data
}

// StopUpdate carries partial edits to a city stop; nil fields are left
// unchanged.
type StopUpdate struct {
	Name      *string
	StartDate *time.Time
	EndDate   *time.Time
	Region    *model.Region
}

// UpdateCityStop merges updates into a stop and re-sorts. Days regenerate
// only when the name or a date changed; a region edit touches nothing else.
func (s *Store) UpdateCityStop(stopID string, u StopUpdate) {
	i := s.stopIndex(stopID)
	if i < 0 {
		return
	}

	regen := false
	if u.Name != nil && *u.Name != s.stops[i].Name {
		s.stops[i].Name = *u.Name
		regen = true
	}
	if u.StartDate != nil && !u.StartDate.Equal(s.stops[i].StartDate) {
		s.stops[i].StartDate = *u.StartDate
		regen = true
	}
	if u.EndDate != nil && !u.EndDate.Equal(s.stops[i].EndDate) {
		s.stops[i].EndDate = *u.EndDate
		regen = true
	}
	if u.Region != nil {
		s.stops[i].Region = *u.Region
	}

	s.sortStops()
	if regen {
		s.regenerateDays()
	}
}

// DeleteCityStop removes a stop and cascades by its former name: every day
// and every catalog activity for that city goes with it. Interest data for
// the city is lost, deliberately.
func (s *Store) DeleteCityStop(stopID string) {
	i := s.stopIndex(stopID)
	if i < 0 {
		return
	}
	name := s.stops[i].Name
	s.stops = append(s.stops[:i], s.stops[i+1:]...)

	n := 0
	for _, d := range s.days {
		if d.CityOrRegion != name {
			s.days[n] = d
			n++
		}
	}
	s.days = s.days[:n]

	n = 0
	for _, a := range s.activities {
		if a.CityOrRegion != name {
			s.activities[n] = a
			n++
		}
	}
	s.activities = s.activities[:n]
}

// ─── internals ──────────────────────────────────────────────────

// setSchedule replaces a day's activity list and its cached hour total
// together, so no caller ever sees the two out of sync.
func (s *Store) setSchedule(dayIdx int, activities []model.Activity) {
	s.days[dayIdx].ScheduledActivities = activities
	s.days[dayIdx].TotalScheduledHours = plan.TotalHours(activities)
}

// regenerateDays rebuilds the day list from the current stops and carries
// schedules over for day IDs that still exist. Deterministic IDs make the
// carry-over exact; only days that vanished lose their assignments.
func (s *Store) regenerateDays() {
	previous := make(map[string]model.Day, len(s.days))
	for _, d := range s.days {
		previous[d.ID] = d
	}

	fresh := plan.GenerateDays(s.stops)
	for i, d := range fresh {
		if old, ok := previous[d.ID]; ok {
			fresh[i].ScheduledActivities = old.ScheduledActivities
			fresh[i].TotalScheduledHours = old.TotalScheduledHours
		}
	}
	s.days = fresh
}

func (s *Store) sortStops() {
	sort.SliceStable(s.stops, func(i, j int) bool {
		return s.stops[i].StartDate.Before(s.stops[j].StartDate)
	})
}

func (s *Store) dayIndex(dayID string) int {
	for i, d := range s.days {
		if d.ID == dayID {
			return i
		}
	}
	return -1
}

func (s *Store) stopIndex(stopID string) int {
	for i, st := range s.stops {
		if st.ID == stopID {
			return i
		}
	}
	return -1
}

func (s *Store) activityIndex(activityID string) int {
	for i, a := range s.activities {
		if a.ID == activityID {
			return i
		}
	}
	return -1
}

// appendActivity copies the schedule before appending so prior snapshots
// never observe in-place growth.
func appendActivity(schedule []model.Activity, extra ...model.Activity) []model.Activity {
	out := make([]model.Activity, 0, len(schedule)+len(extra))
	out = append(out, schedule...)
	return append(out, extra...)
}

func withoutActivity(schedule []model.Activity, activityID string) []model.Activity {
	out := make([]model.Activity, 0, len(schedule))
	for _, a := range schedule {
		if a.ID != activityID {
			out = append(out, a)
		}
	}
	return out
}

func scheduledByID(schedule []model.Activity, activityID string) (model.Activity, bool) {
	for _, a := range schedule {
		if a.ID == activityID {
			return a, true
		}
	}
	return model.Activity{}, false
}

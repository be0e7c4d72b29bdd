package tui

import (
	"fmt"
	"strings"

	"tripdeck/internal/model"
	"tripdeck/internal/plan"
	"tripdeck/internal/tui/components"
	"tripdeck/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// daysState tracks the days tab: a day list on the left and the selected
// day's schedule on the right. focusSched moves key handling into the
// schedule pane.
type daysState struct {
	cursor      int
	schedCursor int
	focusSched  bool
	allCities   bool
}

// visibleDays returns the day list for the current focus.
func (a App) visibleDays() []model.Day {
	if a.daysTab.allCities || a.focusCity == "" {
		return a.store.Days()
	}
	return a.store.DaysForCity(a.focusCity)
}

func (a App) selectedDay() (model.Day, bool) {
	days := a.visibleDays()
	if len(days) == 0 || a.daysTab.cursor >= len(days) {
		return model.Day{}, false
	}
	return days[a.daysTab.cursor], true
}

func (a App) updateDaysKeys(key string) (tea.Model, tea.Cmd, bool) {
	days := a.visibleDays()

	if a.daysTab.focusSched {
		return a.updateScheduleKeys(key)
	}

	switch key {
	case "j", "down":
		a.daysTab.cursor = clamp(a.daysTab.cursor+1, 0, len(days)-1)
		a.daysTab.schedCursor = 0
		return a, nil, true
	case "k", "up":
		a.daysTab.cursor = clamp(a.daysTab.cursor-1, 0, len(days)-1)
		a.daysTab.schedCursor = 0
		return a, nil, true
	case "g":
		a.daysTab.cursor = 0
		a.daysTab.schedCursor = 0
		return a, nil, true
	case "G":
		a.daysTab.cursor = clamp(len(days)-1, 0, len(days)-1)
		a.daysTab.schedCursor = 0
		return a, nil, true
	case "enter":
		if day, ok := a.selectedDay(); ok && len(day.ScheduledActivities) > 0 {
			a.daysTab.focusSched = true
			a.daysTab.schedCursor = 0
		}
		return a, nil, true
	case "s":
		if day, ok := a.selectedDay(); ok {
			a.store.SuggestDay(day.ID)
		}
		return a, nil, true
	case "c":
		a.cycleFocusCity()
		return a, nil, true
	case "A":
		a.daysTab.allCities = !a.daysTab.allCities
		a.daysTab.cursor = 0
		a.daysTab.schedCursor = 0
		return a, nil, true
	}

	return a, nil, false
}

// updateScheduleKeys handles keys while the schedule pane is focused.
func (a App) updateScheduleKeys(key string) (tea.Model, tea.Cmd, bool) {
	day, ok := a.selectedDay()
	if !ok {
		a.daysTab.focusSched = false
		return a, nil, true
	}
	sched := day.ScheduledActivities

	switch key {
	case "esc", "enter":
		a.daysTab.focusSched = false
		return a, nil, true
	case "j", "down":
		a.daysTab.schedCursor = clamp(a.daysTab.schedCursor+1, 0, len(sched)-1)
		return a, nil, true
	case "k", "up":
		a.daysTab.schedCursor = clamp(a.daysTab.schedCursor-1, 0, len(sched)-1)
		return a, nil, true
	case "J":
		// Swap with the next activity
		i := a.daysTab.schedCursor
		if i < len(sched)-1 {
			a.store.Reorder(day.ID, swappedIDs(sched, i, i+1))
			a.daysTab.schedCursor++
		}
		return a, nil, true
	case "K":
		i := a.daysTab.schedCursor
		if i > 0 {
			a.store.Reorder(day.ID, swappedIDs(sched, i-1, i))
			a.daysTab.schedCursor--
		}
		return a, nil, true
	case "x":
		if a.daysTab.schedCursor < len(sched) {
			a.store.Remove(sched[a.daysTab.schedCursor].ID, day.ID)
			a.daysTab.schedCursor = clamp(a.daysTab.schedCursor, 0, len(sched)-2)
			if len(sched) == 1 {
				a.daysTab.focusSched = false
			}
		}
		return a, nil, true
	case "m":
		// Move to the next day in the same city
		if a.daysTab.schedCursor < len(sched) {
			if toID, found := nextDayID(a.store.DaysForCity(day.CityOrRegion), day.ID); found {
				a.store.Move(sched[a.daysTab.schedCursor].ID, day.ID, toID)
				a.daysTab.schedCursor = clamp(a.daysTab.schedCursor, 0, len(sched)-2)
				if len(sched) == 1 {
					a.daysTab.focusSched = false
				}
			}
		}
		return a, nil, true
	}

	return a, nil, false
}

// swappedIDs returns the schedule's activity IDs with positions i and j
// exchanged.
func swappedIDs(sched []model.Activity, i, j int) []string {
	ids := make([]string, len(sched))
	for k, act := range sched {
		ids[k] = act.ID
	}
	ids[i], ids[j] = ids[j], ids[i]
	return ids
}

// nextDayID returns the day after dayID in the list, wrapping around.
func nextDayID(days []model.Day, dayID string) (string, bool) {
	if len(days) < 2 {
		return "", false
	}
	for i, d := range days {
		if d.ID == dayID {
			return days[(i+1)%len(days)].ID, true
		}
	}
	return "", false
}

func (a App) renderDaysTab(cw, contentH int) string {
	t := theme.Active
	days := a.visibleDays()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	if len(days) == 0 {
		return components.ContentCard("Days", labelStyle.Render("No days. Add a city stop on the Route tab."), cw)
	}

	widths := components.LayoutRow(cw, 2)
	listW, detailW := widths[0], widths[1]
	listInnerW := components.CardInnerWidth(listW)

	// Left: day list
	var list strings.Builder
	budget := a.store.Budget()
	for i, d := range days {
		line := fmt.Sprintf("%s %s  %-14s %2d acts %5sh",
			d.Date.Format("Jan 02"),
			d.Date.Format("Mon"),
			truncStr(d.CityOrRegion, 14),
			len(d.ScheduledActivities),
			trimFloat(d.TotalScheduledHours),
		)

		glyph := components.StatusGlyph(plan.Classify(d.TotalScheduledHours, budget))
		if i == a.daysTab.cursor {
			marker := markerStyle.Render("▸ ")
			row := selectedStyle.Render(truncStr(line, listInnerW-4))
			list.WriteString(marker + row + lipgloss.NewStyle().Background(t.SurfaceBright).Render(" ") + glyph)
		} else {
			list.WriteString(valueStyle.Render("  ") + labelStyle.Render(truncStr(line, listInnerW-4)) +
				valueStyle.Render(" ") + glyph)
		}
		list.WriteString("\n")
	}
	list.WriteString("\n")
	hint := "[s]uggest  [Enter] schedule  [c] city  [A] all"
	list.WriteString(labelStyle.Render(hint))

	title := "Days"
	if !a.daysTab.allCities && a.focusCity != "" {
		title = "Days · " + a.focusCity
	}
	left := components.ContentCard(title, list.String(), listW)

	// Right: selected day detail
	right := ""
	if day, ok := a.selectedDay(); ok {
		right = a.renderDayDetail(day, detailW)
	}

	return components.CardRow([]string{left, right})
}

func (a App) renderDayDetail(day model.Day, outerW int) string {
	t := theme.Active
	budget := a.store.Budget()
	innerW := components.CardInnerWidth(outerW)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	status := plan.Classify(day.TotalScheduledHours, budget)
	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(components.ColorForStatus(status))).
		Background(t.Surface).
		Bold(true)

	var b strings.Builder
	b.WriteString(labelStyle.Render(day.Date.Format("Monday, Jan 2")))
	b.WriteString(valueStyle.Render("  "))
	b.WriteString(statusStyle.Render(statusLabel(status)))
	b.WriteString("\n")
	b.WriteString(components.BudgetBar(day.TotalScheduledHours, budget, innerW))
	b.WriteString("\n\n")

	if len(day.ScheduledActivities) == 0 {
		b.WriteString(labelStyle.Render("Nothing scheduled. Press [s] to suggest a plan."))
	}

	for i, act := range day.ScheduledActivities {
		catStyle := lipgloss.NewStyle().
			Foreground(components.ColorForCategory(act.Category)).
			Background(t.Surface)

		line := fmt.Sprintf("%5sh  %s", trimFloat(act.EstimatedDurationHours), truncStr(act.Title, innerW-20))

		if a.daysTab.focusSched && i == a.daysTab.schedCursor {
			marker := markerStyle.Render("▸ ")
			row := selectedStyle.Render(line)
			b.WriteString(marker + row)
			pad := innerW - lipgloss.Width(marker) - lipgloss.Width(row)
			if pad > 0 {
				b.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		} else {
			b.WriteString(valueStyle.Render("  " + line))
		}
		b.WriteString(valueStyle.Render("  "))
		b.WriteString(catStyle.Render(string(act.Category)))
		b.WriteString("\n")
	}

	if a.daysTab.focusSched {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("[J/K] reorder  [x] remove  [m] move  [Esc] back"))
	}

	return components.ContentCard("Schedule", b.String(), outerW)
}

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

// routeState tracks the route tab cursor.
type routeState struct {
	cursor int
}

// updateRouteKeys handles route tab keys. Returns handled=false for keys
// that should fall through to the global bindings.
func (a App) updateRouteKeys(key string) (tea.Model, tea.Cmd, bool) {
	stops := a.store.Stops()

	switch key {
	case "j", "down":
		a.route.cursor = clamp(a.route.cursor+1, 0, len(stops)-1)
		return a, nil, true
	case "k", "up":
		a.route.cursor = clamp(a.route.cursor-1, 0, len(stops)-1)
		return a, nil, true
	case "g":
		a.route.cursor = 0
		return a, nil, true
	case "G":
		a.route.cursor = clamp(len(stops)-1, 0, len(stops)-1)
		return a, nil, true
	case "enter":
		// Focus the selected city and jump to its days
		if a.route.cursor < len(stops) {
			a.focusCity = stops[a.route.cursor].Name
			a.daysTab = daysState{}
			a.activeTab = tabDays
		}
		return a, nil, true
	case "c":
		a.cycleFocusCity()
		return a, nil, true
	case "n":
		return a.openStopForm(model.CityStop{}, "")
	case "e":
		if a.route.cursor < len(stops) {
			stop := stops[a.route.cursor]
			return a.openStopForm(stop, stop.ID)
		}
		return a, nil, true
	case "d":
		if a.route.cursor < len(stops) {
			deleted := stops[a.route.cursor]
			a.store.DeleteCityStop(deleted.ID)
			a.route.cursor = clamp(a.route.cursor, 0, len(a.store.Stops())-1)
			if a.focusCity == deleted.Name {
				if remaining := a.store.Stops(); len(remaining) > 0 {
					a.focusCity = remaining[0].Name
				} else {
					a.focusCity = ""
				}
			}
		}
		return a, nil, true
	}

	return a, nil, false
}

func (a App) renderRouteTab(cw int) string {
	t := theme.Active
	stops := a.store.Stops()
	days := a.store.Days()
	route := plan.SummarizeRoute(days)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	regionStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface)

	// Metric cards across the top
	metrics := components.MetricCardRow([]struct{ Label, Value, Caption string }{
		{"Stops", fmt.Sprintf("%d", len(stops)), ""},
		{"Days", fmt.Sprintf("%d", route.Days), ""},
		{"Scheduled", fmt.Sprintf("%d", route.ActivityCount), "activities"},
		{"Planned", trimFloat(route.ScheduledHours) + "h", fmt.Sprintf("of %sh/day", trimFloat(a.store.Budget()))},
	}, cw)

	// Stop list
	var list strings.Builder
	if len(stops) == 0 {
		list.WriteString(labelStyle.Render("No stops yet. Press [n] to add one."))
	}
	innerW := components.CardInnerWidth(cw)
	for i, stop := range stops {
		summary := plan.SummarizeCity(stop, days)

		name := fmt.Sprintf("%-22s", truncStr(stop.Name, 22))
		region := fmt.Sprintf("%-8s", stop.Region)
		detail := fmt.Sprintf("%s → %s  %d nights  %2d days  %5sh",
			stop.StartDate.Format("Jan 2"),
			stop.EndDate.Format("Jan 2"),
			stop.Nights(),
			summary.Days,
			trimFloat(summary.ScheduledHours),
		)

		if i == a.route.cursor {
			marker := markerStyle.Render("▸ ")
			row := selectedStyle.Render(truncStr(name+region+detail, innerW-2))
			list.WriteString(marker + row)
			pad := innerW - lipgloss.Width(marker) - lipgloss.Width(row)
			if pad > 0 {
				list.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		} else {
			list.WriteString(valueStyle.Render("  "+name) +
				regionStyle.Render(region) +
				labelStyle.Render(detail))
		}
		list.WriteString("\n")
	}
	list.WriteString("\n")
	list.WriteString(labelStyle.Render("[n]ew  [e]dit  [d]elete  [Enter] focus city"))

	// Hours per day chart
	chart := components.HoursChart(days, a.store.Budget(), components.CardInnerWidth(cw), 6)

	var b strings.Builder
	b.WriteString(metrics)
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Route", list.String(), cw))
	if chart != "" {
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Hours per day", chart, cw))
	}

	return b.String()
}

package tui

import (
	"fmt"
	"strings"

	"tripdeck/internal/model"
	"tripdeck/internal/plan"
	"tripdeck/internal/tui/components"
	"tripdeck/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// actsState tracks the activities tab state.
type actsState struct {
	cursor         int
	searching      bool
	searchInput    textinput.Model
	searchQuery    string
	onlyInterested bool
	categoryIdx    int // -1 = all categories, else index into model.Categories
	onlyFocusCity  bool
	notice         string // one-shot feedback line, cleared on next action
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "title or city..."
	ti.CharLimit = 64
	ti.Width = 30
	ti.Prompt = "/ "
	return ti
}

// visibleActivities applies the tab's filters to the catalog.
func (a App) visibleActivities() []model.Activity {
	acts := a.store.Activities()

	if a.acts.onlyFocusCity && a.focusCity != "" {
		acts = plan.ForCity(acts, a.focusCity)
	}
	if a.acts.categoryIdx >= 0 && a.acts.categoryIdx < len(model.Categories) {
		acts = plan.ByCategory(acts, model.Categories[a.acts.categoryIdx])
	}
	if a.acts.onlyInterested {
		acts = plan.Interested(acts)
	}
	if q := strings.ToLower(a.acts.searchQuery); q != "" {
		var matched []model.Activity
		for _, act := range acts {
			if strings.Contains(strings.ToLower(act.Title), q) ||
				strings.Contains(strings.ToLower(act.CityOrRegion), q) {
				matched = append(matched, act)
			}
		}
		acts = matched
	}

	return acts
}

// updateActivitySearch handles key events while in search mode.
func (a App) updateActivitySearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.acts.searchQuery = strings.TrimSpace(a.acts.searchInput.Value())
		a.acts.searching = false
		a.acts.cursor = 0
		return a, nil

	case "esc":
		a.acts.searching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.acts.searchInput, cmd = a.acts.searchInput.Update(msg)
	return a, cmd
}

func (a App) updateActivitiesKeys(key string) (tea.Model, tea.Cmd, bool) {
	visible := a.visibleActivities()
	a.acts.notice = ""

	switch key {
	case "j", "down":
		a.acts.cursor = clamp(a.acts.cursor+1, 0, len(visible)-1)
		return a, nil, true
	case "k", "up":
		a.acts.cursor = clamp(a.acts.cursor-1, 0, len(visible)-1)
		return a, nil, true
	case "g":
		a.acts.cursor = 0
		return a, nil, true
	case "G":
		a.acts.cursor = clamp(len(visible)-1, 0, len(visible)-1)
		return a, nil, true
	case "/":
		a.acts.searching = true
		a.acts.searchInput = newSearchInput()
		a.acts.searchInput.Focus()
		return a, a.acts.searchInput.Cursor.BlinkCmd(), true
	case "esc":
		if a.acts.searchQuery != "" {
			a.acts.searchQuery = ""
			a.acts.cursor = 0
		}
		return a, nil, true
	case " ", "space":
		if a.acts.cursor < len(visible) {
			a.store.ToggleInterest(visible[a.acts.cursor].ID)
		}
		return a, nil, true
	case "i":
		a.acts.onlyInterested = !a.acts.onlyInterested
		a.acts.cursor = 0
		return a, nil, true
	case "f":
		// Cycle category filter: all -> each category -> all
		a.acts.categoryIdx++
		if a.acts.categoryIdx >= len(model.Categories) {
			a.acts.categoryIdx = -1
		}
		a.acts.cursor = 0
		return a, nil, true
	case "c":
		a.acts.onlyFocusCity = !a.acts.onlyFocusCity
		a.acts.cursor = 0
		return a, nil, true
	case "n":
		return a.openActivityForm()
	case "a", "enter":
		if a.acts.cursor < len(visible) {
			act := visible[a.acts.cursor]
			if dayID := a.firstOpenDayFor(act); dayID != "" {
				a.store.Assign(act.ID, dayID)
				if day, ok := a.store.DayByID(dayID); ok {
					a.acts.notice = fmt.Sprintf("Scheduled %q on %s", truncStr(act.Title, 30), day.Date.Format("Jan 2"))
				}
			} else {
				a.acts.notice = fmt.Sprintf("No day on the route for %s", act.CityOrRegion)
			}
		}
		return a, nil, true
	}

	return a, nil, false
}

// firstOpenDayFor picks the first day in the activity's city that the
// activity is not already on and that has budget room left; falls back to
// the city's first day.
func (a App) firstOpenDayFor(act model.Activity) string {
	days := a.store.DaysForCity(act.CityOrRegion)
	if len(days) == 0 {
		return ""
	}
	for _, d := range days {
		if d.Scheduled(act.ID) {
			continue
		}
		if d.TotalScheduledHours+act.EstimatedDurationHours <= a.store.Budget() {
			return d.ID
		}
	}
	return days[0].ID
}

func (a App) renderActivitiesTab(cw, contentH int) string {
	t := theme.Active
	visible := a.visibleActivities()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	starStyle := lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	noticeStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)

	// Filter pill line
	var filters []string
	if a.acts.searching {
		filters = append(filters, a.acts.searchInput.View())
	} else if a.acts.searchQuery != "" {
		filters = append(filters, fmt.Sprintf("search:%q", a.acts.searchQuery))
	}
	if a.acts.categoryIdx >= 0 {
		filters = append(filters, "category:"+string(model.Categories[a.acts.categoryIdx]))
	}
	if a.acts.onlyInterested {
		filters = append(filters, "interested")
	}
	if a.acts.onlyFocusCity && a.focusCity != "" {
		filters = append(filters, "city:"+a.focusCity)
	}

	var b strings.Builder
	if len(filters) > 0 {
		b.WriteString(labelStyle.Render("  " + strings.Join(filters, "  ")))
	}
	b.WriteString("\n")

	innerW := components.CardInnerWidth(cw)
	scheduled := scheduledIDs(a.store.Days())

	// Leave room for the card border, filter line, and footer.
	maxRows := contentH - 7
	if maxRows < 3 {
		maxRows = 3
	}
	offset := 0
	if a.acts.cursor >= maxRows {
		offset = a.acts.cursor - maxRows + 1
	}

	var list strings.Builder
	if len(visible) == 0 {
		list.WriteString(labelStyle.Render("No activities match."))
		list.WriteString("\n")
	}
	for i := offset; i < len(visible) && i < offset+maxRows; i++ {
		act := visible[i]

		star := "☆"
		if act.IsInterested {
			star = "★"
		}
		onDay := " "
		if scheduled[act.ID] {
			onDay = "•"
		}

		catStyle := lipgloss.NewStyle().
			Foreground(components.ColorForCategory(act.Category)).
			Background(t.Surface)

		title := fmt.Sprintf("%-34s", truncStr(act.Title, 34))
		city := fmt.Sprintf("%-18s", truncStr(act.CityOrRegion, 18))
		meta := fmt.Sprintf("%-9s %5sh  %s", act.Category, trimFloat(act.EstimatedDurationHours), act.RecommendedTimeOfDay)

		if i == a.acts.cursor {
			marker := markerStyle.Render("▸ ")
			row := selectedStyle.Render(truncStr(fmt.Sprintf("%s %s %s%s%s", star, onDay, title, city, meta), innerW-2))
			list.WriteString(marker + row)
			pad := innerW - lipgloss.Width(marker) - lipgloss.Width(row)
			if pad > 0 {
				list.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		} else {
			list.WriteString(valueStyle.Render("  ") +
				starStyle.Render(star) +
				dimStyle.Render(" "+onDay+" ") +
				valueStyle.Render(title) +
				labelStyle.Render(city) +
				catStyle.Render(fmt.Sprintf("%-9s", act.Category)) +
				labelStyle.Render(fmt.Sprintf(" %5sh  %s", trimFloat(act.EstimatedDurationHours), act.RecommendedTimeOfDay)))
		}
		list.WriteString("\n")
	}

	list.WriteString("\n")
	if a.acts.notice != "" {
		list.WriteString(noticeStyle.Render(a.acts.notice))
		list.WriteString("\n")
	}
	list.WriteString(labelStyle.Render("[space] interest  [a] schedule  [n]ew  [/] search  [f] category  [i] interested  [c] city"))

	b.WriteString(components.ContentCard(fmt.Sprintf("Catalog  %d of %d", len(visible), len(a.store.Activities())), list.String(), cw))
	return b.String()
}

// scheduledIDs collects every activity ID currently on any day.
func scheduledIDs(days []model.Day) map[string]bool {
	ids := make(map[string]bool)
	for _, d := range days {
		for _, act := range d.ScheduledActivities {
			ids[act.ID] = true
		}
	}
	return ids
}

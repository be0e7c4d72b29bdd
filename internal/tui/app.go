// Package tui provides the interactive Bubble Tea planner for tripdeck.
package tui

import (
	"fmt"
	"strings"

	"tripdeck/internal/itinerary"
	"tripdeck/internal/model"
	"tripdeck/internal/plan"
	"tripdeck/internal/tui/components"
	"tripdeck/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabRoute = iota
	tabActivities
	tabDays
	tabSettings
)

// App is the root Bubble Tea model. The store is the single source of
// truth; tabs query it on every render, so no cached aggregates can go
// stale after a mutation.
type App struct {
	store     *itinerary.Store
	focusCity string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	route    routeState
	acts     actsState
	daysTab  daysState
	settings settingsState

	// Stop add/edit form (huh)
	stopForm *huh.Form
	stopVals stopFormValues
	formEdit string // stop ID being edited, empty for a new stop

	// New-activity form (huh)
	actForm *huh.Form
	actVals activityFormValues
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates the planner model around an already-seeded store.
func NewApp(store *itinerary.Store, focusCity string) App {
	return App{
		store:     store,
		focusCity: focusCity,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.stopForm != nil {
			a.stopForm = a.stopForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.actForm != nil {
			a.actForm = a.actForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.stopForm != nil || a.actForm != nil {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.moveCursor(-1)
			return a, nil

		case tea.MouseButtonWheelDown:
			a.moveCursor(1)
			return a, nil

		case tea.MouseButtonLeft:
			// Tab bar occupies the first line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Open forms intercept all keys
		if a.stopForm != nil {
			return a.updateStopForm(msg)
		}
		if a.actForm != nil {
			return a.updateActivityForm(msg)
		}

		// Settings editing has its own keybindings (text input)
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Activity search mode intercepts all keys when active
		if a.activeTab == tabActivities && a.acts.searching {
			return a.updateActivitySearch(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Tab-local keys first; they may shadow global ones
		switch a.activeTab {
		case tabRoute:
			if m, cmd, handled := a.updateRouteKeys(key); handled {
				return m, cmd
			}
		case tabActivities:
			if m, cmd, handled := a.updateActivitiesKeys(key); handled {
				return m, cmd
			}
		case tabDays:
			if m, cmd, handled := a.updateDaysKeys(key); handled {
				return m, cmd
			}
		case tabSettings:
			if m, cmd, handled := a.updateSettingsKeys(key); handled {
				return m, cmd
			}
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		switch key {
		case "1":
			a.activeTab = tabRoute
		case "2":
			a.activeTab = tabActivities
		case "3":
			a.activeTab = tabDays
		case "4":
			a.activeTab = tabSettings
		case "left", "h":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "l":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		}
		return a, nil
	}

	// Forward unhandled messages to open forms (cursor blinks, etc.)
	if a.stopForm != nil {
		return a.updateStopForm(msg)
	}
	if a.actForm != nil {
		return a.updateActivityForm(msg)
	}

	return a, nil
}

// moveCursor advances the active tab's list cursor; used by wheel scroll.
func (a *App) moveCursor(delta int) {
	switch a.activeTab {
	case tabRoute:
		a.route.cursor = clamp(a.route.cursor+delta, 0, len(a.store.Stops())-1)
	case tabActivities:
		a.acts.cursor = clamp(a.acts.cursor+delta, 0, len(a.visibleActivities())-1)
	case tabDays:
		if a.daysTab.focusSched {
			day, ok := a.selectedDay()
			if ok {
				a.daysTab.schedCursor = clamp(a.daysTab.schedCursor+delta, 0, len(day.ScheduledActivities)-1)
			}
		} else {
			a.daysTab.cursor = clamp(a.daysTab.cursor+delta, 0, len(a.visibleDays())-1)
			a.daysTab.schedCursor = 0
		}
	case tabSettings:
		a.settings.cursor = clamp(a.settings.cursor+delta, 0, settingsFieldCount-1)
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.stopForm != nil {
		return a.stopForm.View()
	}

	if a.actForm != nil {
		return a.actForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  tripdeck needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"1 2 3 4", "Jump to tab"},
		{"← → tab", "Previous / Next tab"},
		{"j k", "Navigate lists"},
		{"Enter", "Drill in / Confirm"},
		{"Esc", "Back / Cancel"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Planning"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"space", "Toggle interest (Activities)"},
		{"a", "Schedule activity (Activities)"},
		{"n", "New activity (Activities)"},
		{"/", "Search activities"},
		{"s", "Suggest a day plan (Days)"},
		{"x", "Unschedule activity (Days)"},
		{"J K", "Reorder within day (Days)"},
		{"m", "Move to next day (Days)"},
		{"n e d", "New / Edit / Delete stop (Route)"},
		{"c", "Cycle focus city"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + focus pill
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	pill := pillStyle.Render(" ") +
		pillAccentStyle.Render(fmt.Sprintf("%sh/day", trimFloat(a.store.Budget())))
	if a.focusCity != "" {
		pill += pillStyle.Render(" │ ") + pillAccentStyle.Render(a.focusCity)
	}
	pill += pillStyle.Render(" ")

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		pillRowStyle.Render(pill)

	// 2. Status bar
	route := plan.SummarizeRoute(a.store.Days())
	statusBar := components.RenderStatusBar(w, a.focusCity, route.Days, route.ActivityCount, route.ScheduledHours)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case tabRoute:
		content = a.renderRouteTab(cw)
	case tabActivities:
		content = a.renderActivitiesTab(cw, contentH)
	case tabDays:
		content = a.renderDaysTab(cw, contentH)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Center content when the terminal is wider than the content cap
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	// 8. Stack vertically and fill the rest of the terminal
	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space in the tab bar
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		if i < len(components.Tabs)-1 {
			pos += 2 // separator between tabs
		}
	}
	return -1
}

// cycleFocusCity advances the focus city through the route's stops.
func (a *App) cycleFocusCity() {
	stops := a.store.Stops()
	if len(stops) == 0 {
		return
	}
	next := 0
	for i, s := range stops {
		if s.Name == a.focusCity {
			next = (i + 1) % len(stops)
			break
		}
	}
	a.focusCity = stops[next].Name
	a.daysTab.cursor = 0
	a.daysTab.schedCursor = 0
	a.daysTab.focusSched = false
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}

func statusLabel(s model.Status) string {
	switch s {
	case model.StatusUnderbooked:
		return "underbooked"
	case model.StatusApproaching:
		return "approaching"
	case model.StatusFull:
		return "full"
	case model.StatusOverbooked:
		return "overbooked"
	default:
		return string(s)
	}
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

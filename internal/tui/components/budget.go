package components

import (
	"fmt"
	"strings"

	"tripdeck/internal/model"
	"tripdeck/internal/plan"
	"tripdeck/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForStatus maps a day's booking status to a theme color.
func ColorForStatus(s model.Status) string {
	t := theme.Active
	switch s {
	case model.StatusUnderbooked:
		return string(t.TextDim)
	case model.StatusApproaching:
		return string(t.Yellow)
	case model.StatusFull:
		return string(t.Green)
	case model.StatusOverbooked:
		return string(t.Red)
	default:
		return string(t.TextMuted)
	}
}

// ColorForCategory maps an activity category to a theme color.
func ColorForCategory(c model.Category) lipgloss.Color {
	t := theme.Active
	switch c {
	case model.CategoryFood:
		return t.Orange
	case model.CategoryCulture:
		return t.Magenta
	case model.CategoryOutdoors:
		return t.Green
	case model.CategoryNight:
		return t.Blue
	case model.CategoryAnchor:
		return t.AccentBright
	case model.CategoryRelax:
		return t.Yellow
	case model.CategoryHistory:
		return t.Red
	case model.CategoryShopping:
		return t.Cyan
	default:
		return t.TextMuted
	}
}

// StatusGlyph is the compact one-character status indicator used in lists.
func StatusGlyph(s model.Status) string {
	glyph := "●"
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorForStatus(s))).
		Background(theme.Active.Surface)
	if s == model.StatusUnderbooked {
		glyph = "○"
	}
	return style.Render(glyph)
}

// BudgetBar renders a labeled meter of scheduled hours against the daily
// budget. Overbooked days fill the bar completely in the overbooked color;
// the hour figures stay exact.
func BudgetBar(hours, budget float64, width int) string {
	t := theme.Active

	status := plan.Classify(hours, budget)
	pct := 0.0
	if budget > 0 {
		pct = hours / budget
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	barW := width - 14
	if barW < 4 {
		barW = 4
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForStatus(status)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	hoursStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorForStatus(status))).
		Background(t.Surface).
		Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		hoursStyle.Render(fmt.Sprintf("%s/%s", trimHours(hours), trimHours(budget)))
}

// CompactBudgetBar renders a tiny status-bar-sized budget indicator.
func CompactBudgetBar(label string, hours, budget float64, width int) string {
	t := theme.Active

	barW := width - lipgloss.Width(label) - 12
	if barW < 4 {
		barW = 4
	}

	status := plan.Classify(hours, budget)
	pct := 0.0
	if budget > 0 {
		pct = hours / budget
	}
	if pct > 1 {
		pct = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForStatus(status)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(label) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		labelStyle.Render(trimHours(hours)+"h")
}

func trimHours(hours float64) string {
	s := fmt.Sprintf("%.1f", hours)
	return strings.TrimSuffix(s, ".0")
}

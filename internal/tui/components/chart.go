package components

import (
	"fmt"
	"math"
	"strings"

	"tripdeck/internal/model"
	"tripdeck/internal/plan"
	"tripdeck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4)
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// HoursChart renders one bar per trip day showing scheduled hours, colored
// by booking status against the daily budget. A dashed line row marks the
// budget level. Trip day counts are small, so no downsampling is needed.
func HoursChart(days []model.Day, budget float64, width, height int) string {
	if len(days) == 0 {
		return ""
	}
	t := theme.Active

	if height < 3 || width < 15 {
		values := make([]float64, len(days))
		for i, d := range days {
			values[i] = d.TotalScheduledHours
		}
		return Sparkline(values, t.Accent)
	}

	// Scale to whichever is higher: the budget or the busiest day.
	ceiling := budget
	for _, d := range days {
		if d.TotalScheduledHours > ceiling {
			ceiling = d.TotalScheduledHours
		}
	}
	if ceiling <= 0 {
		ceiling = 1
	}
	ceiling = math.Ceil(ceiling)

	yLabelW := len(fmt.Sprintf("%.0fh", ceiling))
	if yLabelW < 3 {
		yLabelW = 3
	}

	chartW := width - yLabelW - 1
	n := len(days)
	gap := 1
	barW := (chartW - (n - 1)) / n
	if barW < 1 {
		barW = 1
		gap = 0
	}
	if barW > 4 {
		barW = 4
	}
	axisLen := n*barW + (n-1)*gap
	if axisLen < 0 {
		axisLen = 0
	}

	// Which chart row the budget line falls on.
	budgetRow := 0
	if budget > 0 && budget <= ceiling {
		budgetRow = int(math.Round(budget / ceiling * float64(height)))
	}

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	budgetStyle := lipgloss.NewStyle().Foreground(t.BorderBright).Background(t.Surface)
	surfaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(height)
		rowBottom := ceiling * float64(row-1) / float64(height)

		label := ""
		if row == height {
			label = fmt.Sprintf("%.0fh", ceiling)
		} else if row == budgetRow {
			label = fmt.Sprintf("%.0fh", budget)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for i, d := range days {
			if i > 0 && gap > 0 {
				if row == budgetRow {
					b.WriteString(budgetStyle.Render("┄"))
				} else {
					b.WriteString(surfaceStyle.Render(" "))
				}
			}

			hours := d.TotalScheduledHours
			status := plan.Classify(hours, budget)
			barStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorForStatus(status))).
				Background(t.Surface)

			switch {
			case hours >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case hours > rowBottom:
				frac := (hours - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx < 1 {
					idx = 1
				}
				if idx > 8 {
					idx = 8
				}
				b.WriteString(barStyle.Render(strings.Repeat(string(blocks[idx]), barW)))
			case row == budgetRow:
				b.WriteString(budgetStyle.Render(strings.Repeat("┄", barW)))
			default:
				b.WriteString(surfaceStyle.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	// X axis: day-of-month labels, thinned to avoid collisions.
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	buf := make([]byte, axisLen)
	for i := range buf {
		buf[i] = ' '
	}
	lastEnd := -1
	for i, d := range days {
		lbl := fmt.Sprintf("%d", d.Date.Day())
		pos := i * (barW + gap)
		end := pos + len(lbl)
		if pos <= lastEnd || end > axisLen {
			continue
		}
		copy(buf[pos:end], lbl)
		lastEnd = end + 1
	}
	b.WriteString(surfaceStyle.Render(strings.Repeat(" ", yLabelW+1)))
	b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))

	return b.String()
}

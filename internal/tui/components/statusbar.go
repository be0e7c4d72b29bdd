package components

import (
	"fmt"

	"tripdeck/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// trip totals on the right.
func RenderStatusBar(width int, city string, days, scheduled int, hours float64) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	right := fmt.Sprintf("%s · %d days · %d scheduled · %sh planned ",
		city, days, scheduled, trimHours(hours))
	if city == "" {
		right = fmt.Sprintf("%d days · %d scheduled · %sh planned ",
			days, scheduled, trimHours(hours))
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}

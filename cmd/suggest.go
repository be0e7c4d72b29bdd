package cmd

import (
	"fmt"

	"tripdeck/internal/cli"
	"tripdeck/internal/itinerary"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [day-id]",
	Short: "Fill a day with a suggested schedule",
	Long: "Greedily fills a day from the city's unscheduled activities: the first " +
		"anchor that fits, then shorter activities first until the daily budget runs out.",
	Args: cobra.MaximumNArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(_ *cobra.Command, args []string) error {
	store, cfg, err := loadStore()
	if err != nil {
		return err
	}

	var dayID string
	if len(args) > 0 {
		dayID = args[0]
	} else {
		dayID = firstOpenDay(store, focusCity(cfg, store))
		if dayID == "" {
			return fmt.Errorf("no day to suggest for; pass a day ID (see `tripdeck days`)")
		}
	}

	day, ok := store.DayByID(dayID)
	if !ok {
		return fmt.Errorf("unknown day %q", dayID)
	}

	store.SuggestDay(dayID)
	day, _ = store.DayByID(dayID)

	fmt.Println()
	fmt.Printf("  %s  %s\n", cli.FormatDate(day.Date), day.CityOrRegion)
	fmt.Printf("  %s\n\n", cli.RenderBudgetMeter(day.TotalScheduledHours, store.Budget(), 20))

	if len(day.ScheduledActivities) == 0 {
		fmt.Println("  Nothing to suggest: no unscheduled activities for this city.")
		fmt.Println()
		return nil
	}

	for _, a := range day.ScheduledActivities {
		fmt.Printf("    %s  %s  %s\n",
			cli.FormatHours(a.EstimatedDurationHours),
			cli.Truncate(a.Title, 44),
			string(a.Category),
		)
	}
	fmt.Println()
	return nil
}

// firstOpenDay picks the first day in the city with nothing scheduled, or
// the city's first day when all are booked.
func firstOpenDay(store *itinerary.Store, city string) string {
	days := store.DaysForCity(city)
	if len(days) == 0 {
		return ""
	}
	for _, d := range days {
		if len(d.ScheduledActivities) == 0 {
			return d.ID
		}
	}
	return days[0].ID
}

package cmd

import (
	"fmt"

	"tripdeck/internal/cli"
	"tripdeck/internal/plan"

	"github.com/spf13/cobra"
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Show the trip route",
	RunE:  runRoute,
}

func init() {
	rootCmd.AddCommand(routeCmd)
}

func runRoute(_ *cobra.Command, _ []string) error {
	store, _, err := loadStore()
	if err != nil {
		return err
	}

	stops := store.Stops()
	if len(stops) == 0 {
		fmt.Println("\n  No city stops in the itinerary.")
		return nil
	}

	days := store.Days()
	route := plan.SummarizeRoute(days)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ROUTE  %s", cli.FormatDateRange(stops[0].StartDate, stops[len(stops)-1].EndDate))))
	fmt.Println()

	rows := make([][]string, 0, len(stops))
	for _, stop := range stops {
		summary := plan.SummarizeCity(stop, days)
		rows = append(rows, []string{
			stop.Name,
			string(stop.Region),
			cli.FormatDateRange(stop.StartDate, stop.EndDate),
			cli.FormatNights(stop.Nights()),
			fmt.Sprintf("%d", summary.Days),
			cli.FormatHours(summary.ScheduledHours),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"City", "Region", "Dates", "Stay", "Days", "Planned"},
		Rows:    rows,
	}))

	hoursPerDay := make([]float64, 0, len(days))
	for _, d := range days {
		hoursPerDay = append(hoursPerDay, d.TotalScheduledHours)
	}
	fmt.Printf("\n  %d days, %s planned  %s\n\n",
		route.Days,
		cli.FormatHours(route.ScheduledHours),
		cli.RenderSparkline(hoursPerDay),
	)

	return nil
}

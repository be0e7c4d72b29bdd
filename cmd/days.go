package cmd

import (
	"fmt"

	"tripdeck/internal/cli"
	"tripdeck/internal/model"
	"tripdeck/internal/plan"

	"github.com/spf13/cobra"
)

var flagVerboseDays bool

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "Day-by-day schedule with booking status",
	RunE:  runDays,
}

func init() {
	daysCmd.Flags().BoolVarP(&flagVerboseDays, "long", "l", false, "Show each day's scheduled activities")
	rootCmd.AddCommand(daysCmd)
}

func runDays(_ *cobra.Command, _ []string) error {
	store, _, err := loadStore()
	if err != nil {
		return err
	}

	days := store.Days()
	if flagCity != "" {
		days = store.DaysForCity(flagCity)
	}
	if len(days) == 0 {
		fmt.Println("\n  No days to show.")
		return nil
	}

	budget := store.Budget()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAYS  budget %s/day", cli.FormatHours(budget))))
	fmt.Println()

	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{
			d.Date.Format(model.DateFormat),
			d.Date.Format("Mon"),
			d.CityOrRegion,
			fmt.Sprintf("%d", len(d.ScheduledActivities)),
			cli.FormatHours(d.TotalScheduledHours),
			cli.FormatStatus(plan.Classify(d.TotalScheduledHours, budget)),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "City", "Acts", "Hours", "Status"},
		Rows:    rows,
	}))

	if flagVerboseDays {
		for _, d := range days {
			fmt.Printf("\n  %s  %s  %s\n", cli.FormatDate(d.Date), d.CityOrRegion,
				cli.RenderBudgetMeter(d.TotalScheduledHours, budget, 20))
			if len(d.ScheduledActivities) == 0 {
				fmt.Println("    (nothing scheduled)")
				continue
			}
			for _, a := range d.ScheduledActivities {
				fmt.Printf("    %s  %s  %s\n",
					cli.FormatHours(a.EstimatedDurationHours),
					cli.Truncate(a.Title, 44),
					string(a.Category),
				)
			}
		}
	}

	fmt.Println()
	return nil
}

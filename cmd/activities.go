package cmd

import (
	"fmt"

	"tripdeck/internal/cli"
	"tripdeck/internal/model"
	"tripdeck/internal/plan"

	"github.com/spf13/cobra"
)

var (
	flagCategory   string
	flagDuration   string
	flagTimeOfDay  string
	flagInterested bool
)

var activitiesCmd = &cobra.Command{
	Use:     "activities",
	Aliases: []string{"acts"},
	Short:   "Browse the activity catalog",
	RunE:    runActivities,
}

func init() {
	activitiesCmd.Flags().StringVar(&flagCategory, "category", "", "Filter by category (food, culture, outdoors, night, anchor, relax, history, shopping)")
	activitiesCmd.Flags().StringVar(&flagDuration, "duration", "", "Filter by duration band (short, medium, long)")
	activitiesCmd.Flags().StringVar(&flagTimeOfDay, "time-of-day", "", "Filter by time of day (morning, afternoon, evening)")
	activitiesCmd.Flags().BoolVar(&flagInterested, "interested", false, "Only activities marked interested")
	rootCmd.AddCommand(activitiesCmd)
}

func runActivities(_ *cobra.Command, _ []string) error {
	store, _, err := loadStore()
	if err != nil {
		return err
	}

	activities := store.Activities()
	if flagCity != "" {
		activities = plan.ForCity(activities, flagCity)
	}
	if flagCategory != "" {
		cat, ok := model.ParseCategory(flagCategory)
		if !ok {
			return fmt.Errorf("unknown category %q", flagCategory)
		}
		activities = plan.ByCategory(activities, cat)
	}
	if flagDuration != "" {
		band, ok := plan.ParseDurationBand(flagDuration)
		if !ok {
			return fmt.Errorf("unknown duration band %q", flagDuration)
		}
		activities = plan.ByDuration(activities, band)
	}
	if flagTimeOfDay != "" {
		slot, ok := model.ParseTimeOfDay(flagTimeOfDay)
		if !ok {
			return fmt.Errorf("unknown time of day %q", flagTimeOfDay)
		}
		activities = plan.ByTimeOfDay(activities, slot)
	}
	if flagInterested {
		activities = plan.Interested(activities)
	}

	if len(activities) == 0 {
		fmt.Println("\n  No activities match.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("ACTIVITIES  %d shown", len(activities))))
	fmt.Println()

	rows := make([][]string, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, []string{
			cli.InterestMark(a.IsInterested) + " " + cli.Truncate(a.Title, 40),
			a.CityOrRegion,
			string(a.Category),
			cli.FormatDuration(a.EstimatedDurationHours),
			string(a.RecommendedTimeOfDay),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Activity", "City", "Category", "Duration", "Time"},
		Rows:    rows,
	}))

	fmt.Println()
	return nil
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"tripdeck/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// activityFormValues backs the huh form for adding a catalog activity.
type activityFormValues struct {
	title    string
	city     string
	hours    string
	category string
	slot     string
}

func validateHours(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter hours > 0, e.g. 2.5")
	}
	return nil
}

func newActivityForm(v *activityFormValues, cities []string) *huh.Form {
	categories := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		categories[i] = string(c)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("New activity"),
			huh.NewInput().
				Title("Title").
				Value(&v.title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("City").
				Options(huh.NewOptions(cities...)...).
				Value(&v.city),
			huh.NewInput().
				Title("Duration (hours)").
				Value(&v.hours).
				Validate(validateHours),
			huh.NewSelect[string]().
				Title("Category").
				Options(huh.NewOptions(categories...)...).
				Value(&v.category),
			huh.NewSelect[string]().
				Title("Time of day").
				Options(huh.NewOptions(
					string(model.TimeFlexible),
					string(model.TimeMorning),
					string(model.TimeAfternoon),
					string(model.TimeEvening),
				)...).
				Value(&v.slot),
		),
	)
}

// openActivityForm shows the new-activity form. Needs at least one stop so
// the city select has options.
func (a App) openActivityForm() (tea.Model, tea.Cmd, bool) {
	stops := a.store.Stops()
	if len(stops) == 0 {
		a.acts.notice = "Add a city stop first"
		return a, nil, true
	}

	cities := make([]string, len(stops))
	for i, s := range stops {
		cities[i] = s.Name
	}

	a.actVals = activityFormValues{
		city:     cities[0],
		category: string(model.CategoryCulture),
		slot:     string(model.TimeFlexible),
	}
	if a.focusCity != "" {
		a.actVals.city = a.focusCity
	}

	a.actForm = newActivityForm(&a.actVals, cities)
	if a.width > 0 {
		a.actForm = a.actForm.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.actForm.Init(), true
}

func (a App) updateActivityForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.actForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.actForm = f
	}

	if a.actForm.State == huh.StateCompleted {
		a.applyActivityForm()
		a.actForm = nil
		return a, nil
	}

	if a.actForm.State == huh.StateAborted {
		a.actForm = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) applyActivityForm() {
	v := a.actVals

	hours, err := strconv.ParseFloat(strings.TrimSpace(v.hours), 64)
	if err != nil || hours <= 0 {
		return
	}

	category, _ := model.ParseCategory(v.category)
	slot, _ := model.ParseTimeOfDay(v.slot)

	created := a.store.CreateActivity(model.Activity{
		CityOrRegion:           v.city,
		Title:                  strings.TrimSpace(v.title),
		Category:               category,
		EstimatedDurationHours: hours,
		RecommendedTimeOfDay:   slot,
	})
	a.acts.notice = fmt.Sprintf("Added %q to the catalog", truncStr(created.Title, 30))
}

package tui

import (
	"fmt"
	"strings"

	"tripdeck/internal/itinerary"
	"tripdeck/internal/model"
	"tripdeck/internal/plan"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// stopFormValues backs the huh form fields for adding or editing a stop.
type stopFormValues struct {
	name   string
	start  string
	end    string
	region string
}

func validateDate(s string) error {
	if _, err := plan.Date(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func newStopForm(v *stopFormValues, adding bool) *huh.Form {
	title := "Edit city stop"
	if adding {
		title = "New city stop"
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().
				Title("City").
				Value(&v.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Arrive (YYYY-MM-DD)").
				Value(&v.start).
				Validate(validateDate),
			huh.NewInput().
				Title("Depart (YYYY-MM-DD)").
				Value(&v.end).
				Validate(validateDate),
			huh.NewSelect[string]().
				Title("Region").
				Options(huh.NewOptions(
					string(model.RegionNorth),
					string(model.RegionCentral),
					string(model.RegionSouth),
				)...).
				Value(&v.region),
		),
	)
}

// openStopForm shows the add/edit form. editID is empty for a new stop.
func (a App) openStopForm(stop model.CityStop, editID string) (tea.Model, tea.Cmd, bool) {
	a.stopVals = stopFormValues{
		name:   stop.Name,
		region: string(stop.Region),
	}
	if !stop.StartDate.IsZero() {
		a.stopVals.start = stop.StartDate.Format(model.DateFormat)
		a.stopVals.end = stop.EndDate.Format(model.DateFormat)
	}
	if a.stopVals.region == "" {
		a.stopVals.region = string(model.RegionNorth)
	}

	a.formEdit = editID
	a.stopForm = newStopForm(&a.stopVals, editID == "")
	if a.width > 0 {
		a.stopForm = a.stopForm.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.stopForm.Init(), true
}

func (a App) updateStopForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.stopForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.stopForm = f
	}

	if a.stopForm.State == huh.StateCompleted {
		a.applyStopForm()
		a.stopForm = nil
		a.formEdit = ""
		return a, nil
	}

	if a.stopForm.State == huh.StateAborted {
		a.stopForm = nil
		a.formEdit = ""
		return a, nil
	}

	return a, cmd
}

func (a *App) applyStopForm() {
	v := a.stopVals

	// Fields already passed validation; a parse failure here means the
	// form was completed without them, so bail out.
	start, err := plan.Date(strings.TrimSpace(v.start))
	if err != nil {
		return
	}
	end, err := plan.Date(strings.TrimSpace(v.end))
	if err != nil {
		return
	}
	if end.Before(start) {
		start, end = end, start
	}

	name := strings.TrimSpace(v.name)
	region, _ := model.ParseRegion(v.region)

	if a.formEdit == "" {
		created := a.store.AddCityStop(model.CityStop{
			Name:      name,
			StartDate: start,
			EndDate:   end,
			Region:    region,
		})
		if a.focusCity == "" {
			a.focusCity = created.Name
		}
		return
	}

	previous, _ := a.store.StopByID(a.formEdit)
	a.store.UpdateCityStop(a.formEdit, itinerary.StopUpdate{
		Name:      &name,
		StartDate: &start,
		EndDate:   &end,
		Region:    &region,
	})
	if a.focusCity == previous.Name && previous.Name != name {
		a.focusCity = name
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/bookingkit/internal/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	done, total := m.Completion()
	sections := []string{
		components.Display("Book a car").View(),
		components.NewProgress(total).View(done),
	}

	for _, f := range m.fields {
		sections = append(sections, f.View())
	}
	sections = append(sections, m.insurance.View())

	if len(m.cfg.Vehicles) > 0 {
		sections = append(sections, m.vehicleSection())
	}

	slot := m.current()
	submit := components.PrimaryButton("Book now").
		WithFocus(slot.kind == focusSubmit).
		WithDisabled(m.submitting)
	sections = append(sections, submit.View())

	if m.submitting {
		sections = append(sections, m.loader.View())
	}
	if toasts := m.toasts.View(); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, components.Divider(max(m.width, 24)), m.help.View(m.keys))

	return strings.Join(sections, "\n\n")
}

func (m Model) vehicleSection() string {
	label := components.Field{
		Label:   "Vehicle",
		Focused: m.current().kind == focusVehicle,
	}
	rows := []string{m.vehicles.View()}

	if vehicle, ok := m.selectedVehicle(); ok {
		card := components.VehicleCard(vehicle.Name, vehicle.Seats, vehicle.DailyRate).WithSelected(true)
		if estimate, ok := (Booking{Vehicle: vehicle, Values: m.Values()}).Estimate(); ok {
			card = card.WithDescription(fmt.Sprintf("Estimated total %.2f", estimate))
		}
		if m.insurance.Checked() {
			card = card.WithBadge("Insured")
		}
		rows = append(rows, card.View())
	}
	return label.Wrap(strings.Join(rows, "\n"))
}

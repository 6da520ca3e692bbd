package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bookingkit/internal/config"
	"github.com/alexisbeaulieu97/bookingkit/internal/notify"
	"github.com/alexisbeaulieu97/bookingkit/internal/ports"
	"github.com/alexisbeaulieu97/bookingkit/internal/tui/numberfield"
)

const maxToastWidth = 48

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.toasts.SetWidth(min(msg.Width-2, maxToastWidth))
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.submitting {
			return m, nil
		}
		return m.scheduleToasts(m.handleKey(msg))
	case numberfield.StepMsg, numberfield.BlurMsg:
		return m.scheduleToasts(m.broadcast(msg))
	case numberfield.ChangedMsg:
		m.log.WithFields(map[string]any{"field": msg.ID, "value": msg.Value.String()}).Debug("value changed")
		return m, nil
	case BookedMsg:
		return m.scheduleToasts(m.completeBooking(msg.Booking))
	case notify.ExpiredMsg:
		m.toasts.Update(msg)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.loader, cmd = m.loader.Update(msg)
		return m, cmd
	}

	// cursor blinks and pastes belong to the focused field
	if slot := m.current(); slot.kind == focusField {
		return m.scheduleToasts(m.updateField(slot.index, msg))
	}
	return m, nil
}

func (m Model) scheduleToasts(next Model, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	return next, tea.Batch(cmd, next.toasts.Schedule())
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	}

	slot := m.current()
	switch slot.kind {
	case focusField:
		if key.Matches(msg, m.keys.Submit) {
			return m.moveFocus(1)
		}
		return m.updateField(slot.index, msg)
	case focusInsurance:
		if key.Matches(msg, m.keys.Toggle, m.keys.Submit) {
			m.insurance = m.insurance.Toggle()
		}
	case focusVehicle:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.vehicles.Prev()
		case key.Matches(msg, m.keys.Down):
			m.vehicles.Next()
		case key.Matches(msg, m.keys.Toggle, m.keys.Submit):
			m.vehicles.Confirm()
		}
	case focusSubmit:
		if key.Matches(msg, m.keys.Toggle, m.keys.Submit) {
			return m.submit()
		}
	}
	return m, nil
}

// updateField replaces the field at i with its updated copy. The slice is
// copied so earlier model values keep their own fields.
func (m Model) updateField(i int, msg tea.Msg) (Model, tea.Cmd) {
	field, cmd := m.fields[i].Update(msg)
	m.setField(i, field)
	return m, cmd
}

func (m *Model) setField(i int, field numberfield.Model) {
	fields := make([]numberfield.Model, len(m.fields))
	copy(fields, m.fields)
	fields[i] = field
	m.fields = fields
}

func (m Model) broadcast(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i := range m.fields {
		var cmd tea.Cmd
		m, cmd = m.updateField(i, msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) moveFocus(delta int) (Model, tea.Cmd) {
	if len(m.slots) == 0 {
		return m, nil
	}
	m, leaveCmd := m.leave()
	m.focus = (m.focus + delta + len(m.slots)) % len(m.slots)
	m, enterCmd := m.enter()
	return m, tea.Batch(leaveCmd, enterCmd)
}

// leave takes focus away from the current control. Leaving a numeric field
// blurs it, which settles its value into range.
func (m Model) leave() (Model, tea.Cmd) {
	slot := m.current()
	switch slot.kind {
	case focusField:
		field, cmd := m.fields[slot.index].Blur()
		m.setField(slot.index, field)
		return m, cmd
	case focusInsurance:
		m.insurance = m.insurance.WithFocus(false)
	case focusVehicle:
		m.vehicles.SetFocused(false)
	}
	return m, nil
}

func (m Model) enter() (Model, tea.Cmd) {
	slot := m.current()
	switch slot.kind {
	case focusField:
		field, cmd := m.fields[slot.index].Focus()
		m.setField(slot.index, field)
		return m, cmd
	case focusInsurance:
		m.insurance = m.insurance.WithFocus(true)
	case focusVehicle:
		m.vehicles.SetFocused(true)
	}
	return m, nil
}

func (m Model) selectedVehicle() (config.VehicleConfig, bool) {
	option, ok := m.vehicles.Selected()
	if !ok {
		return config.VehicleConfig{}, false
	}
	for _, v := range m.cfg.Vehicles {
		if v.ID == option.Value {
			return v, true
		}
	}
	return config.VehicleConfig{}, false
}

// submit checks the form and hands the booking to the backend.
func (m Model) submit() (Model, tea.Cmd) {
	var missing []string
	for i, f := range m.fields {
		if !f.Valid() {
			m.setField(i, f.Touch())
			missing = append(missing, f.Label())
		}
	}
	if len(missing) > 0 {
		m.notifier.Notify(ports.Notice{
			Level:   ports.LevelError,
			Title:   "Missing details",
			Message: "Fill in " + strings.Join(missing, ", "),
		})
		return m, nil
	}

	vehicle, chosen := m.selectedVehicle()
	if len(m.cfg.Vehicles) > 0 && !chosen {
		m.notifier.Notify(ports.Notice{
			Level:   ports.LevelError,
			Title:   "Vehicle",
			Message: "Choose a vehicle",
		})
		return m, nil
	}

	values := m.Values()
	if passengers, ok := values[fieldPassengers].Float(); ok && chosen && passengers > float64(vehicle.Seats) {
		m.notifier.Notify(ports.Notice{
			Level:   ports.LevelError,
			Title:   vehicle.Name,
			Message: fmt.Sprintf("Seats %d passengers at most", vehicle.Seats),
		})
		return m, nil
	}

	booking := Booking{Vehicle: vehicle, Values: values, Insurance: m.insurance.Checked()}
	m.log.WithFields(map[string]any{"vehicle": vehicle.ID, "insurance": booking.Insurance}).Info("booking submitted")

	m.submitting = true
	var loaderCmd tea.Cmd
	m.loader, loaderCmd = m.loader.Start()
	return m, tea.Batch(loaderCmd, submitCmd(booking, m.submitDelay))
}

func (m Model) completeBooking(booking Booking) (Model, tea.Cmd) {
	m.submitting = false
	m.loader = m.loader.Stop()
	m.booked = &booking

	message := "Your booking is confirmed"
	if booking.Vehicle.Name != "" {
		message = booking.Vehicle.Name + " reserved"
	}
	if estimate, ok := booking.Estimate(); ok {
		message += fmt.Sprintf(", estimate %.2f", estimate)
	}
	m.notifier.Notify(ports.Notice{Level: ports.LevelSuccess, Title: "Booked", Message: message})
	m.log.WithFields(map[string]any{"vehicle": booking.Vehicle.ID}).Info("booking confirmed")
	return m, nil
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bookingkit/internal/config"
	"github.com/alexisbeaulieu97/bookingkit/internal/numeric"
)

const (
	fieldPassengers = "passengers"
	fieldRentalDays = "rental_days"
)

// Booking is what the form submits.
type Booking struct {
	Vehicle   config.VehicleConfig
	Values    map[string]numeric.Value
	Insurance bool
}

// Estimate multiplies the vehicle's daily rate by the rental days. It
// reports false when either is missing.
func (b Booking) Estimate() (float64, bool) {
	days, ok := b.Values[fieldRentalDays].Float()
	if !ok || b.Vehicle.DailyRate <= 0 {
		return 0, false
	}
	return days * b.Vehicle.DailyRate, true
}

// BookedMsg reports that a submitted booking was accepted.
type BookedMsg struct {
	Booking Booking
}

// submitCmd stands in for the reservation backend: it accepts every booking
// after delay.
func submitCmd(booking Booking, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return BookedMsg{Booking: booking} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return BookedMsg{Booking: booking}
	})
}

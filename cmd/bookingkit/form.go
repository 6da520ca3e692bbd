package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookingkit/internal/notify"
	"github.com/alexisbeaulieu97/bookingkit/internal/tui"
)

func newFormCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Run the interactive booking form",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return fmt.Errorf("form needs an interactive terminal; use showcase for static output")
			}

			app, err := newAppContext(flags, cmd.ErrOrStderr(), true)
			if err != nil {
				return err
			}
			defer app.Close()

			model := tui.NewModel(tui.Options{
				Config:   app.Config,
				Logger:   app.Logger,
				Notifier: notify.NewLogNotifier(app.Logger),
			})

			app.Logger.Info("starting booking form")
			final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				app.Logger.Error(err, "booking form failed")
				return fmt.Errorf("run booking form: %w", err)
			}

			if m, ok := final.(tui.Model); ok {
				if booking, ok := m.Booked(); ok {
					fmt.Fprintln(cmd.OutOrStdout(), summary(booking))
				}
			}
			return nil
		},
	}

	return cmd
}

func summary(b tui.Booking) string {
	line := fmt.Sprintf("Booked %s", b.Vehicle.Name)
	if estimate, ok := b.Estimate(); ok {
		line += fmt.Sprintf(" (estimate %.2f)", estimate)
	}
	if b.Insurance {
		line += " with full insurance"
	}
	return line
}

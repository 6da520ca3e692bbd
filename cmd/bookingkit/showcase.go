package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookingkit/internal/components"
	"github.com/alexisbeaulieu97/bookingkit/internal/config"
	"github.com/alexisbeaulieu97/bookingkit/internal/numeric"
	"github.com/alexisbeaulieu97/bookingkit/internal/ports"
	"github.com/alexisbeaulieu97/bookingkit/internal/tui/numberfield"
)

type showcaseOptions struct {
	plain bool
}

func newShowcaseCmd(flags *rootFlags) *cobra.Command {
	opts := showcaseOptions{}

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Print a gallery of every component with the active theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags, cmd.ErrOrStderr(), false)
			if err != nil {
				return err
			}
			defer app.Close()

			backend := components.BackendTerminal
			if opts.plain || !isTerminal(cmd.OutOrStdout()) {
				backend = components.BackendPlain
			}
			app.Logger.WithFields(map[string]any{"backend": backend.String()}).Debug("rendering showcase")

			fmt.Fprintln(cmd.OutOrStdout(), components.Render(backend, renderShowcase(app.Config)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Strip colours and styling from the output")
	return cmd
}

// renderShowcase lays out one section per component family.
func renderShowcase(cfg *config.Config) string {
	sections := []string{
		components.Display("bookingkit components").View(),
		section("Typography",
			components.Heading("Heading").View(),
			components.Subheading("Subheading").View(),
			components.Body("Body text for booking details").View(),
			components.Caption("Caption for prices and hints").View(),
			components.Code("rental_days: 3").View(),
		),
		section("Buttons",
			components.NewButtonGroup(
				components.PrimaryButton("Book now"),
				components.PrimaryButton("Compare").WithVariant(components.ButtonVariantSecondary),
				components.PrimaryButton("Cancel").WithVariant(components.ButtonVariantDanger),
				components.PrimaryButton("Details").WithVariant(components.ButtonVariantOutline),
			).View(),
			components.NewButtonGroup(
				components.PrimaryButton("Focused").WithFocus(true),
				components.PrimaryButton("Disabled").WithDisabled(true),
				components.PrimaryButton("Skip").WithVariant(components.ButtonVariantGhost),
			).View(),
		),
		section("Alerts",
			components.InfoAlert("Prices include local taxes").View(),
			components.SuccessAlert("Booking confirmed").View(),
			components.WarningAlert("Passengers adjusted to 9").View(),
			components.ErrorAlert("Payment declined").View(),
		),
		section("Checkboxes",
			components.NewCheckbox("Full insurance cover", false).View(),
			components.NewCheckbox("Child seat", true).View(),
			components.NewCheckbox("Focused option", false).WithFocus(true).View(),
			components.NewCheckbox("Unavailable extra", false).WithDisabled(true).View(),
		),
		section("Number inputs", numberInputs(cfg)...),
		section("Vehicles", vehicles(cfg)...),
		section("Progress", components.NewProgress(4).View(3)),
	}

	loader, _ := components.NewLoader("Checking availability").Start()
	sections = append(sections, section("Loader", loader.View()))

	return strings.Join(sections, "\n\n")
}

func section(title string, rows ...string) string {
	return components.Heading(title).View() + "\n" + strings.Join(rows, "\n")
}

func numberInputs(cfg *config.Config) []string {
	views := make([]string, 0, len(cfg.Fields)+1)
	for _, fc := range cfg.Fields {
		field := numberfield.New(numberfield.Options{
			ID:          fc.ID,
			Label:       fc.Label,
			Help:        fc.Help,
			Required:    fc.Required,
			Initial:     fc.InitialValue(),
			Constraints: fc.Constraints(),
		})
		views = append(views, field.View())
	}

	invalid := numberfield.New(numberfield.Options{
		ID:       "example_required",
		Label:    "Required example",
		Required: true,
		Initial:  numeric.Unset,
	}).Touch()
	return append(views, invalid.View())
}

func vehicles(cfg *config.Config) []string {
	if len(cfg.Vehicles) == 0 {
		return []string{components.Caption("no vehicles configured").View()}
	}

	options := make([]ports.Option, 0, len(cfg.Vehicles))
	for _, v := range cfg.Vehicles {
		options = append(options, ports.Option{Value: v.ID, Label: v.Name, Hint: fmt.Sprintf("%d seats", v.Seats)})
	}
	list := components.NewSelect(options...)
	list.Select(0)

	first := cfg.Vehicles[0]
	card := components.VehicleCard(first.Name, first.Seats, first.DailyRate).WithSelected(true)
	return []string{list.View(), card.View()}
}

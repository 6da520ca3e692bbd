package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckboxToggle(t *testing.T) {
	t.Parallel()

	box := NewCheckbox("Full insurance", false)
	toggled := box.Toggle()

	assert.False(t, box.Checked())
	assert.True(t, toggled.Checked())
	assert.Equal(t, "[ ] Full insurance", Render(BackendPlain, box.View()))
	assert.Equal(t, "[x] Full insurance", Render(BackendPlain, toggled.View()))
}

func TestCheckboxDisabledIgnoresToggle(t *testing.T) {
	t.Parallel()

	box := NewCheckbox("Child seat", true).WithDisabled(true)
	assert.True(t, box.Toggle().Checked())
	assert.True(t, box.Disabled())
}

func TestTextHelpersApplyVariants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TypographyVariantHeading, Heading("Vehicles").Variant())
	assert.Equal(t, TypographyVariantCaption, Caption("per day").Variant())
	assert.Equal(t, "Vehicles", Render(BackendPlain, Heading("Vehicles").View()))
	assert.Equal(t, " x := 1", Render(BackendPlain, Code("x := 1").View()))
}

func TestTextModifiersWinOverPreset(t *testing.T) {
	t.Parallel()

	text := Caption("late").With(Foreground(PaletteDanger))
	style := Style(Style(lipgloss.NewStyle(), text.appliers...), Typography(text.variant))
	assert.Equal(t, GetTheme().Palette.Danger.Base, style.GetForeground())
}

func TestDivider(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Divider(0))
	assert.Equal(t, "────", Render(BackendPlain, Divider(4)))
}

func TestFieldState(t *testing.T) {
	t.Parallel()

	assert.Equal(t, InputStateDefault, Field{}.State())
	assert.Equal(t, InputStateFocus, Field{Focused: true}.State())
	assert.Equal(t, InputStateInvalid, Field{Focused: true, Error: "required"}.State())
	assert.Equal(t, InputStateDisabled, Field{Error: "required", Disabled: true}.State())
}

func TestFieldWrap(t *testing.T) {
	t.Parallel()

	shell := Field{Label: "Passengers", Required: true, Help: "Including the driver"}
	lines := strings.Split(Render(BackendPlain, shell.Wrap("CONTROL")), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  Passengers *", lines[0])
	assert.Equal(t, "CONTROL", lines[1])
	assert.Equal(t, "Including the driver", lines[2])

	shell.Error = "Enter at least 1"
	shell.Focused = true
	lines = strings.Split(Render(BackendPlain, shell.Wrap("CONTROL")), "\n")
	assert.Equal(t, "› Passengers *", lines[0])
	assert.Equal(t, "Enter at least 1", lines[2], "errors replace help text")
}

func TestNumberInputView(t *testing.T) {
	t.Parallel()

	input := NumberInput{
		Field:        Field{Label: "Rental days"},
		Input:        "7",
		CanDecrement: true,
		CanIncrement: false,
	}
	view := Render(BackendPlain, input.View())

	assert.Contains(t, view, "Rental days")
	assert.Contains(t, view, "7")
	assert.Contains(t, view, "-")
	assert.Contains(t, view, "+")
	assert.Contains(t, view, "╭", "unfocused box uses the rounded ring")

	input.Focused = true
	assert.Contains(t, Render(BackendPlain, input.View()), "┏")
}

package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonVariantsRender(t *testing.T) {
	t.Parallel()

	variants := map[string]ButtonVariant{
		"primary":   ButtonVariantPrimary,
		"secondary": ButtonVariantSecondary,
		"danger":    ButtonVariantDanger,
		"outline":   ButtonVariantOutline,
	}
	for name, variant := range variants {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			view := Render(BackendPlain, PrimaryButton("Book").WithVariant(variant).View())
			assert.Contains(t, view, "Book")
			assert.Contains(t, view, "╭", "bordered variants draw a rounded frame")
		})
	}
}

func TestGhostButtonHasNoFrame(t *testing.T) {
	t.Parallel()

	view := Render(BackendPlain, PrimaryButton("Skip").WithVariant(ButtonVariantGhost).View())
	assert.Equal(t, "  Skip", view)
}

func TestButtonFocusUsesThickBorder(t *testing.T) {
	t.Parallel()

	view := Render(BackendPlain, PrimaryButton("Book").WithFocus(true).View())
	assert.Contains(t, view, "┏")
}

func TestButtonWithMethodsReturnCopies(t *testing.T) {
	t.Parallel()

	base := PrimaryButton("Book")
	disabled := base.WithDisabled(true).WithSize(ButtonSizeLarge)

	assert.True(t, base.Activatable())
	assert.False(t, disabled.Activatable())
	assert.Equal(t, ButtonSizeMedium, base.Options().Size)
	assert.Equal(t, ButtonSizeLarge, disabled.Options().Size)
	assert.Equal(t, "Book", disabled.Label())
}

func TestStepButtonDisabledState(t *testing.T) {
	t.Parallel()

	assert.True(t, StepButton("+", true).Activatable())
	assert.False(t, StepButton("+", false).Activatable())
	assert.Equal(t, ButtonVariantOutline, StepButton("-", true).Options().Variant)
}

func TestButtonGroupJoinsOnOneRow(t *testing.T) {
	t.Parallel()

	group := NewButtonGroup(PrimaryButton("Back")).Add(PrimaryButton("Book"))
	require.Equal(t, 2, group.Len())

	lines := strings.Split(Render(BackendPlain, group.View()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Back")
	assert.Contains(t, lines[1], "Book")
}

func TestButtonGroupEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewButtonGroup().View())
	assert.Equal(t, 0, NewButtonGroup().WithSpacing(-3).spacing)
}

package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlertPresets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		alert   Alert
		title   string
		icon    string
		variant AlertVariant
	}{
		{"success", SuccessAlert("Booking confirmed"), "Success", "✓", AlertVariantSuccess},
		{"error", ErrorAlert("Card declined"), "Error", "✗", AlertVariantError},
		{"warning", WarningAlert("Adjusted to 9"), "Warning", "!", AlertVariantWarning},
		{"info", InfoAlert("Prices include tax"), "Info", "i", AlertVariantInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			view := Render(BackendPlain, tt.alert.View())
			assert.Contains(t, view, tt.icon+" "+tt.title)
			assert.Contains(t, view, tt.alert.Message())
			assert.Contains(t, view, "[x]")
			assert.Equal(t, tt.variant, tt.alert.Options().Variant)
			assert.Equal(t, tt.name, tt.variant.String())
		})
	}
}

func TestAlertWithoutTitleOrDismiss(t *testing.T) {
	t.Parallel()

	view := Render(BackendPlain, NewAlert("Heads up", AlertOptions{}).View())
	assert.NotContains(t, view, "[x]")
	assert.Contains(t, view, "Heads up")
	assert.True(t, strings.HasPrefix(view, "┌"))
}

func TestAlertWidthPadsFrame(t *testing.T) {
	t.Parallel()

	narrow := NewAlert("a", AlertOptions{})
	wide := narrow.WithWidth(30)

	firstLine := func(s string) string { return strings.SplitN(s, "\n", 2)[0] }
	assert.Greater(t,
		len([]rune(firstLine(Render(BackendPlain, wide.View())))),
		len([]rune(firstLine(Render(BackendPlain, narrow.View())))))
	assert.Equal(t, 0, narrow.Options().Width)
}

package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleCardShowsDetails(t *testing.T) {
	view := Render(BackendPlain, VehicleCard("Family Estate", 5, 64.5).View())

	assert.Contains(t, view, "Family Estate")
	assert.Contains(t, view, "Seats    5")
	assert.Contains(t, view, "Per day  64.50")
}

func TestCardBadgeAndDescription(t *testing.T) {
	card := NewCard(CardData{Title: "City Hatch"}).
		WithBadge("Popular").
		WithDescription("Easy to park")

	view := Render(BackendPlain, card.View())
	assert.Contains(t, view, "City Hatch")
	assert.Contains(t, view, "Popular")
	assert.Contains(t, view, "Easy to park")
}

func TestCardSelectedUsesThickFrame(t *testing.T) {
	card := NewCard(CardData{Title: "Van"})

	require.False(t, card.Selected())
	plain := Render(BackendPlain, card.View())
	selected := Render(BackendPlain, card.WithSelected(true).View())

	assert.Contains(t, plain, "╭")
	assert.Contains(t, selected, "┏")
	assert.False(t, card.Selected(), "WithSelected must return a copy")
}

func TestCardEmptyStillRendersFrame(t *testing.T) {
	assert.NotEmpty(t, NewCard(CardData{}).View())
}

func TestCardWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected string
	}{
		{name: "short", text: "Short", width: 20, expected: "Short"},
		{name: "long", text: "This is a very long text", width: 10, expected: "This is a\nvery long\ntext"},
		{name: "word longer than width", text: "supercalifragilistic", width: 10, expected: "supercalif\nragilistic"},
		{name: "empty", text: "", width: 10, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// frame border and padding take two cells on each side
			card := NewCard(CardData{}).WithWidth(tt.width + 4)
			assert.Equal(t, tt.expected, card.wrapText(tt.text))
		})
	}
}

func TestCardWrapTextDisabledWithoutWidth(t *testing.T) {
	card := NewCard(CardData{}).WithWidth(0)
	assert.Equal(t, "a b c", card.wrapText("a b c"))
}

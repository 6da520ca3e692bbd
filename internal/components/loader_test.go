package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderLifecycle(t *testing.T) {
	t.Parallel()

	loader := NewLoader("Reserving vehicle")
	assert.False(t, loader.Active())
	assert.Empty(t, loader.View())

	loader, cmd := loader.Start()
	require.NotNil(t, cmd)
	assert.True(t, loader.Active())

	tick, ok := cmd().(spinner.TickMsg)
	require.True(t, ok)

	loader, next := loader.Update(tick)
	assert.NotNil(t, next, "an active loader keeps ticking")
	assert.True(t, strings.HasSuffix(Render(BackendPlain, loader.View()), "Reserving vehicle"))

	loader = loader.Stop()
	_, next = loader.Update(tick)
	assert.Nil(t, next, "a stopped loader lets the tick chain lapse")
	assert.Empty(t, loader.View())
}

func TestLoaderIgnoresOtherMessages(t *testing.T) {
	t.Parallel()

	loader, _ := NewLoader("x").Start()
	_, cmd := loader.Update("not a tick")
	assert.Nil(t, cmd)
	assert.Equal(t, "Saving", loader.WithLabel("Saving").Label())
}

func TestProgress(t *testing.T) {
	t.Parallel()

	p := NewProgress(3)
	assert.Equal(t, 3, p.Total())
	assert.InDelta(t, 0.0, p.Ratio(-1), 1e-9)
	assert.InDelta(t, 2.0/3.0, p.Ratio(2), 1e-9)
	assert.InDelta(t, 1.0, p.Ratio(9), 1e-9)
	assert.InDelta(t, 0.0, NewProgress(0).Ratio(1), 1e-9)

	view := Render(BackendPlain, p.View(2))
	assert.True(t, strings.HasPrefix(view, "2/3 "))
	assert.Greater(t, len([]rune(view)), len("2/3 "), "the bar follows the label")
	assert.True(t, strings.HasPrefix(Render(BackendPlain, p.View(7)), "3/3 "))
}

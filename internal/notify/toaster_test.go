package notify

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bookingkit/internal/components"
	"github.com/alexisbeaulieu97/bookingkit/internal/ports"
)

func notice(msg string) ports.Notice {
	return ports.Notice{Level: ports.LevelInfo, Message: msg}
}

func messages(t *Toaster) []string {
	var out []string
	for _, n := range t.Notices() {
		out = append(out, n.Message)
	}
	return out
}

func TestToasterDropsOldestWhenFull(t *testing.T) {
	t.Parallel()

	toaster := NewToaster(2, 0)
	toaster.Notify(notice("one"))
	toaster.Notify(notice("two"))
	toaster.Notify(notice("three"))

	assert.Equal(t, []string{"two", "three"}, messages(toaster))
}

func TestToasterDefaultCapacity(t *testing.T) {
	t.Parallel()

	toaster := NewToaster(0, 0)
	for i := 0; i < DefaultCapacity+2; i++ {
		toaster.Notify(notice("n"))
	}
	assert.Equal(t, DefaultCapacity, toaster.Len())
}

func TestToasterExpireIsFIFO(t *testing.T) {
	t.Parallel()

	toaster := NewToaster(3, 0)
	toaster.Notify(notice("one"))
	toaster.Notify(notice("two"))

	require.True(t, toaster.Expire())
	assert.Equal(t, []string{"two"}, messages(toaster))
	require.True(t, toaster.Expire())
	assert.False(t, toaster.Expire())
}

func TestToasterScheduleOnlyNewToasts(t *testing.T) {
	t.Parallel()

	toaster := NewToaster(3, time.Millisecond)
	assert.Nil(t, toaster.Schedule())

	toaster.Notify(notice("one"))
	cmd := toaster.Schedule()
	require.NotNil(t, cmd)

	msg := cmd()
	expired, ok := msg.(ExpiredMsg)
	require.True(t, ok)
	assert.Equal(t, uint64(1), expired.ID)

	assert.Nil(t, toaster.Schedule(), "already scheduled toasts are not scheduled twice")

	assert.True(t, toaster.Update(expired))
	assert.Zero(t, toaster.Len())
	assert.False(t, toaster.Update(expired), "a retired toast cannot expire twice")
}

func TestToasterWithoutTTLNeverSchedules(t *testing.T) {
	t.Parallel()

	toaster := NewToaster(3, 0)
	toaster.Notify(notice("sticky"))
	assert.Nil(t, toaster.Schedule())
}

func TestToasterUpdateRemovesByID(t *testing.T) {
	t.Parallel()

	toaster := NewToaster(3, 0)
	toaster.Notify(notice("one"))
	toaster.Notify(notice("two"))
	toaster.Notify(notice("three"))

	assert.True(t, toaster.Update(ExpiredMsg{ID: 2}))
	assert.Equal(t, []string{"one", "three"}, messages(toaster))
	assert.False(t, toaster.Update(tea.KeyMsg{}))
}

func TestToasterView(t *testing.T) {
	t.Parallel()

	toaster := NewToaster(3, 0)
	assert.Empty(t, toaster.View())

	toaster.Notify(ports.Notice{Level: ports.LevelWarning, Title: "Passengers", Message: "Adjusted to 9"})
	toaster.Notify(ports.Notice{Level: ports.LevelSuccess, Title: "Booked", Message: "See you soon"})

	view := components.Render(components.BackendPlain, toaster.View())
	warning := strings.Index(view, "! Passengers")
	success := strings.Index(view, "✓ Booked")
	require.GreaterOrEqual(t, warning, 0)
	require.GreaterOrEqual(t, success, 0)
	assert.Less(t, warning, success, "newest toast renders last")
	assert.Contains(t, view, "Adjusted to 9")
	for _, line := range strings.Split(view, "\n") {
		assert.True(t, strings.HasPrefix(line, " "), "toasts are inset from the edge: %q", line)
	}

	toaster.Clear()
	assert.Empty(t, toaster.View())
}

func TestAlertForMapsLevels(t *testing.T) {
	t.Parallel()

	cases := map[ports.Level]components.AlertVariant{
		ports.LevelInfo:    components.AlertVariantInfo,
		ports.LevelSuccess: components.AlertVariantSuccess,
		ports.LevelWarning: components.AlertVariantWarning,
		ports.LevelError:   components.AlertVariantError,
	}
	for level, variant := range cases {
		assert.Equal(t, variant, AlertFor(ports.Notice{Level: level}).Options().Variant, level.String())
	}
}

package notify

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bookingkit/internal/logger"
	"github.com/alexisbeaulieu97/bookingkit/internal/ports"
)

func TestLogNotifierWritesStructuredEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	n := NewLogNotifier(log)
	n.Notify(ports.Notice{Level: ports.LevelWarning, Title: "Passengers", Message: "Adjusted to 9"})
	n.Notify(ports.Notice{Level: ports.LevelError, Message: "Booking failed"})
	n.Notify(ports.Notice{Level: ports.LevelSuccess, Message: "Booked"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "notify", entry["component"])
	assert.Equal(t, "Passengers", entry["title"])
	assert.Equal(t, "warning", entry["severity"])
	assert.Equal(t, "Adjusted to 9", entry["message"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "error", entry["level"])

	require.NoError(t, json.Unmarshal([]byte(lines[2]), &entry))
	assert.Equal(t, "info", entry["level"])
}

func TestLogNotifierToleratesNilLogger(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		NewLogNotifier(nil).Notify(ports.Notice{Message: "dropped"})
	})
}

func TestMultiFansOut(t *testing.T) {
	t.Parallel()

	var got []string
	record := func(prefix string) ports.Notifier {
		return ports.NotifierFunc(func(n ports.Notice) { got = append(got, prefix+n.Message) })
	}

	Multi{record("a:"), nil, record("b:"), Nop{}}.Notify(ports.Notice{Message: "hi"})
	assert.Equal(t, []string{"a:hi", "b:hi"}, got)
}

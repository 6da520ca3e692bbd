package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	kiterrors "github.com/alexisbeaulieu97/bookingkit/pkg/errors"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"field": "passengers", "event": "blur"})
	log.Info("value corrected")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "value corrected", entry["message"])
	require.Equal(t, "passengers", entry["field"])
	require.Equal(t, "blur", entry["event"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithComponent("numberfield")
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "numberfield", entry["component"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty", Writer: &bytes.Buffer{}})

	var validationErr *kiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "log_level", validationErr.Field)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	level, err := ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, level)

	level, err = ParseLevel(" DEBUG ")
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, level)

	_, err = ParseLevel("verbose")
	require.Error(t, err)
}

func TestHumanReadableOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Info("hidden")
	log.WithComponent("notify").Warn("seat limit exceeded")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "seat limit exceeded")
	require.Contains(t, out, "component=")
	require.NotContains(t, out, "{")
}

func TestNilAndDiscardLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("ignored")
		nilLogger.Error(errors.New("ignored"), "ignored")
		require.Nil(t, nilLogger.WithComponent("x"))
	})

	require.NotPanics(t, func() {
		Discard().WithFields(map[string]any{"k": "v"}).Warn("dropped")
	})
}

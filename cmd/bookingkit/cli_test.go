package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bookingkit/internal/components"
	apperrors "github.com/alexisbeaulieu97/bookingkit/pkg/errors"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { components.SetTheme(components.DefaultTheme()) })

	cmd := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookingkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestShowcasePlainGallery(t *testing.T) {
	stdout, _, err := executeCommand(t, "showcase", "--plain")
	require.NoError(t, err)

	for _, want := range []string{
		"bookingkit components",
		"Book now",
		"Passengers *",
		"Including the driver",
		"Required example *",
		"Required",
		"(•) City hatchback",
		"Per day",
		"3/4",
		"Checking availability",
	} {
		require.Contains(t, stdout, want)
	}
	require.NotContains(t, stdout, "\x1b[")
}

func TestShowcaseNonTerminalIsPlain(t *testing.T) {
	stdout, _, err := executeCommand(t, "showcase")
	require.NoError(t, err)
	require.NotContains(t, stdout, "\x1b[")
}

func TestShowcaseUsesConfiguredVehicles(t *testing.T) {
	path := writeConfig(t, `
fields:
  - id: seats
    label: Seats needed
    min: 1
    max: 7
vehicles:
  - id: roadster
    name: Roadster
    seats: 2
    daily_rate: 120
`)

	stdout, _, err := executeCommand(t, "showcase", "--plain", "--config", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "Seats needed")
	require.Contains(t, stdout, "(•) Roadster")
	require.NotContains(t, stdout, "City hatchback")
}

func TestShowcaseRejectsBrokenConfig(t *testing.T) {
	path := writeConfig(t, "fields: [")

	_, _, err := executeCommand(t, "showcase", "--config", path)
	require.Error(t, err)

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
}

func TestShowcaseRejectsUnknownLogLevel(t *testing.T) {
	_, _, err := executeCommand(t, "showcase", "--log-level", "chatty")
	require.Error(t, err)
	require.Contains(t, err.Error(), "create logger")
}

func TestShowcaseWritesLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "bookingkit.log")

	_, stderr, err := executeCommand(t, "showcase", "--plain", "--log-level", "debug", "--log-file", logPath)
	require.NoError(t, err)
	require.Empty(t, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"message":"configuration loaded"`)
	require.Contains(t, string(data), `"backend":"plain"`)
}

func TestFormNeedsTerminal(t *testing.T) {
	_, _, err := executeCommand(t, "form")
	require.Error(t, err)
	require.Contains(t, err.Error(), "interactive terminal")
}

func TestIsTerminal(t *testing.T) {
	original := termIsTerminal
	t.Cleanup(func() { termIsTerminal = original })

	termIsTerminal = func(int) bool { return true }
	require.True(t, isTerminal(os.Stdout))
	require.False(t, isTerminal(&bytes.Buffer{}))
}

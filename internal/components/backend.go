package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Backend selects how rendered views reach the output.
type Backend int

const (
	// BackendTerminal keeps colours, borders and attributes.
	BackendTerminal Backend = iota
	// BackendPlain strips every escape sequence, for pipes and log files.
	BackendPlain
)

func (b Backend) String() string {
	switch b {
	case BackendTerminal:
		return "terminal"
	case BackendPlain:
		return "plain"
	default:
		return "unknown"
	}
}

// Render adapts a component view to the backend.
func Render(backend Backend, view string) string {
	if backend != BackendPlain {
		return view
	}

	lines := strings.Split(ansi.Strip(view), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

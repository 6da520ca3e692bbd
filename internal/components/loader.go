package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Loader is an animated activity indicator with a label. It only consumes
// spinner ticks while active, so a stopped loader lets its tick chain lapse.
type Loader struct {
	spinner spinner.Model
	label   string
	active  bool
}

func NewLoader(label string) Loader {
	s := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(Style(lipgloss.NewStyle(), Foreground(PalettePrimary))),
	)
	return Loader{spinner: s, label: label}
}

func (l Loader) Active() bool  { return l.active }
func (l Loader) Label() string { return l.label }

func (l Loader) WithLabel(label string) Loader {
	l.label = label
	return l
}

// Start activates the loader and returns the first tick.
func (l Loader) Start() (Loader, tea.Cmd) {
	l.active = true
	return l, l.spinner.Tick
}

func (l Loader) Stop() Loader {
	l.active = false
	return l
}

func (l Loader) Update(msg tea.Msg) (Loader, tea.Cmd) {
	if !l.active {
		return l, nil
	}
	if _, ok := msg.(spinner.TickMsg); !ok {
		return l, nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return l, cmd
}

// View renders nothing while inactive.
func (l Loader) View() string {
	if !l.active {
		return ""
	}
	label := Style(lipgloss.NewStyle(), Typography(TypographyVariantCaption)).Render(l.label)
	return l.spinner.View() + " " + label
}

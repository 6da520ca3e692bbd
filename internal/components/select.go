package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/bookingkit/internal/ports"
)

// Select is a single-choice option list with a movable cursor.
type Select struct {
	options  []ports.Option
	cursor   int
	selected int
	focused  bool
}

var _ ports.Selector = (*Select)(nil)

func NewSelect(options ...ports.Option) *Select {
	return &Select{
		options:  append([]ports.Option(nil), options...),
		selected: -1,
	}
}

func (s *Select) Options() []ports.Option {
	return append([]ports.Option(nil), s.options...)
}

func (s *Select) Selected() (ports.Option, bool) {
	if s.selected < 0 || s.selected >= len(s.options) {
		return ports.Option{}, false
	}
	return s.options[s.selected], true
}

// SelectedIndex returns -1 until a choice has been made.
func (s *Select) SelectedIndex() int { return s.selected }

// Select chooses the option at index and moves the cursor onto it.
func (s *Select) Select(index int) bool {
	if index < 0 || index >= len(s.options) {
		return false
	}
	s.selected = index
	s.cursor = index
	return true
}

// SelectValue chooses the option whose Value matches.
func (s *Select) SelectValue(value string) bool {
	for i, option := range s.options {
		if option.Value == value {
			return s.Select(i)
		}
	}
	return false
}

func (s *Select) Cursor() int { return s.cursor }

// Next moves the cursor down, stopping at the last option.
func (s *Select) Next() {
	if s.cursor < len(s.options)-1 {
		s.cursor++
	}
}

// Prev moves the cursor up, stopping at the first option.
func (s *Select) Prev() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// Confirm selects the option under the cursor.
func (s *Select) Confirm() bool {
	return s.Select(s.cursor)
}

func (s *Select) SetFocused(focused bool) { s.focused = focused }

func (s *Select) Focused() bool { return s.focused }

func (s *Select) View() string {
	if len(s.options) == 0 {
		return Caption("no options").View()
	}

	body := Style(lipgloss.NewStyle(), Typography(TypographyVariantBody))
	active := Style(lipgloss.NewStyle(), Foreground(PalettePrimary), Typography(TypographyVariantEmphasis))
	hint := Style(TextPalette(PaletteSlate, PaletteShade500), Typography(TypographyVariantCaption))

	rows := make([]string, 0, len(s.options))
	for i, option := range s.options {
		pointer := "  "
		if s.focused && i == s.cursor {
			pointer = "> "
		}
		mark := "( ) "
		style := body
		if i == s.selected {
			mark = "(•) "
			style = active
		}

		label := option.Label
		if label == "" {
			label = option.Value
		}
		row := pointer + style.Render(mark+label)
		if option.Hint != "" {
			row += "  " + hint.Render(option.Hint)
		}
		rows = append(rows, row)
	}

	frame := panelStyle()
	if s.focused {
		frame = cloneAppliers(frame, BorderColour(PalettePrimary))
	}
	return Style(lipgloss.NewStyle(), frame...).Render(strings.Join(rows, "\n"))
}

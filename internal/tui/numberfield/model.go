package numberfield

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/alexisbeaulieu97/bookingkit/internal/logger"
	"github.com/alexisbeaulieu97/bookingkit/internal/notify"
	"github.com/alexisbeaulieu97/bookingkit/internal/numeric"
	"github.com/alexisbeaulieu97/bookingkit/internal/ports"
)

const defaultWidth = 12

// Options configures a numeric field widget.
type Options struct {
	ID          string
	Label       string
	Help        string
	Required    bool
	Initial     numeric.Value
	Constraints numeric.Constraints
	Width       int
	KeyMap      *KeyMap
	Notifier    ports.Notifier
	Logger      *logger.Logger
}

// Model hosts a numeric.Field behind a bubbles text input. The text input
// only reports raw strings; what it shows is always the field's display text.
type Model struct {
	id       string
	label    string
	help     string
	required bool
	width    int

	field   numeric.Field
	input   textinput.Model
	keys    KeyMap
	focused bool
	touched bool
	last    numeric.Outcome

	notifier ports.Notifier
	log      *logger.Logger
}

func New(opts Options) Model {
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}

	keys := DefaultKeyMap()
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}

	var notifier ports.Notifier = notify.Nop{}
	if opts.Notifier != nil {
		notifier = opts.Notifier
	}

	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	field := numeric.NewField(opts.Initial, opts.Constraints)

	input := textinput.New()
	input.Prompt = ""
	input.Width = max(width-3, 1)
	input.SetValue(field.Display())

	return Model{
		id:       opts.ID,
		label:    opts.Label,
		help:     opts.Help,
		required: opts.Required,
		width:    width,
		field:    field,
		input:    input,
		keys:     keys,
		notifier: notifier,
		log:      log.WithComponent("numberfield").WithFields(map[string]any{"field": opts.ID}),
	}
}

func (m Model) ID() string                   { return m.id }
func (m Model) Label() string                { return m.label }
func (m Model) Value() numeric.Value         { return m.field.Value() }
func (m Model) Display() string              { return m.field.Display() }
func (m Model) Field() numeric.Field         { return m.field }
func (m Model) Focused() bool                { return m.focused }
func (m Model) KeyMap() KeyMap               { return m.keys }
func (m Model) LastOutcome() numeric.Outcome { return m.last }

// InputValue returns what the text box currently holds.
func (m Model) InputValue() string { return m.input.Value() }

func (m Model) CanIncrement() bool { return m.field.CanIncrement() }
func (m Model) CanDecrement() bool { return m.field.CanDecrement() }

// Error describes why the current value cannot be submitted. Required
// fields only complain after they have been visited.
func (m Model) Error() string {
	if m.required && m.touched && !m.field.Value().IsSet() {
		return "Required"
	}
	return ""
}

// Valid reports whether the field can be submitted as is.
func (m Model) Valid() bool {
	return !m.required || m.field.Value().IsSet()
}

// Touch marks the field as visited so a missing required value is reported.
func (m Model) Touch() Model {
	m.touched = true
	return m
}

func (m *Model) record(outcome numeric.Outcome) {
	m.last = outcome
	entry := m.log.WithFields(map[string]any{
		"event":  outcome.Event.String(),
		"result": outcome.Result.String(),
		"value":  outcome.Value.String(),
	})
	if outcome.Result == numeric.ResultCorrected {
		entry.Info("value corrected into range")
		m.notifier.Notify(ports.Notice{
			Level:   ports.LevelWarning,
			Title:   m.label,
			Message: fmt.Sprintf("Adjusted to %s", outcome.Value.String()),
		})
		return
	}
	entry.Debug("field transition")
}

// syncInput makes the text box show the field's display text. The cursor is
// left alone when the text already matches.
func (m *Model) syncInput() {
	display := m.field.Display()
	if m.input.Value() == display {
		return
	}
	m.input.SetValue(display)
	m.input.CursorEnd()
}

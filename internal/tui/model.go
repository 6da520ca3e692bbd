package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bookingkit/internal/components"
	"github.com/alexisbeaulieu97/bookingkit/internal/config"
	"github.com/alexisbeaulieu97/bookingkit/internal/logger"
	"github.com/alexisbeaulieu97/bookingkit/internal/notify"
	"github.com/alexisbeaulieu97/bookingkit/internal/numeric"
	"github.com/alexisbeaulieu97/bookingkit/internal/ports"
	"github.com/alexisbeaulieu97/bookingkit/internal/tui/numberfield"
)

const (
	defaultToastTTL    = 4 * time.Second
	defaultSubmitDelay = 1200 * time.Millisecond
)

// Options configures the booking form.
type Options struct {
	Config      *config.Config
	Logger      *logger.Logger
	Notifier    ports.Notifier
	ToastTTL    time.Duration
	SubmitDelay time.Duration
}

// focusKind identifies what a focus slot points at.
type focusKind int

const (
	focusField focusKind = iota
	focusInsurance
	focusVehicle
	focusSubmit
)

type focusSlot struct {
	kind  focusKind
	index int
}

// Model is the interactive booking form: configured numeric fields, an
// insurance checkbox, a vehicle list and a submit button.
type Model struct {
	cfg       *config.Config
	fields    []numberfield.Model
	insurance components.Checkbox
	vehicles  *components.Select
	toasts    *notify.Toaster
	loader    components.Loader
	help      help.Model
	keys      keyMap
	log       *logger.Logger
	notifier  ports.Notifier

	slots       []focusSlot
	focus       int
	submitting  bool
	booked      *Booking
	quitting    bool
	width       int
	submitDelay time.Duration
}

// NewModel builds the form described by opts.Config, falling back to the
// built-in form when it is nil.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	ttl := opts.ToastTTL
	if ttl == 0 {
		ttl = defaultToastTTL
	}
	delay := opts.SubmitDelay
	if delay == 0 {
		delay = defaultSubmitDelay
	}

	toasts := notify.NewToaster(notify.DefaultCapacity, ttl)
	notifier := notify.Multi{toasts, opts.Notifier}

	fields := make([]numberfield.Model, 0, len(cfg.Fields))
	for _, fc := range cfg.Fields {
		fields = append(fields, numberfield.New(numberfield.Options{
			ID:          fc.ID,
			Label:       fc.Label,
			Help:        fc.Help,
			Required:    fc.Required,
			Initial:     fc.InitialValue(),
			Constraints: fc.Constraints(),
			Notifier:    notifier,
			Logger:      log,
		}))
	}

	options := make([]ports.Option, 0, len(cfg.Vehicles))
	for _, v := range cfg.Vehicles {
		options = append(options, ports.Option{
			Value: v.ID,
			Label: v.Name,
			Hint:  fmt.Sprintf("%d seats · %.2f/day", v.Seats, v.DailyRate),
		})
	}

	m := Model{
		cfg:         cfg,
		fields:      fields,
		insurance:   components.NewCheckbox("Full insurance cover", false),
		vehicles:    components.NewSelect(options...),
		toasts:      toasts,
		loader:      components.NewLoader("Reserving your car"),
		help:        help.New(),
		keys:        defaultKeyMap(),
		log:         log.WithComponent("booking"),
		submitDelay: delay,
	}
	m.slots = m.buildSlots()
	m.notifier = notifier
	m, _ = m.enter()
	return m
}

func (m Model) buildSlots() []focusSlot {
	slots := make([]focusSlot, 0, len(m.fields)+3)
	for i := range m.fields {
		slots = append(slots, focusSlot{kind: focusField, index: i})
	}
	slots = append(slots, focusSlot{kind: focusInsurance})
	if len(m.vehicles.Options()) > 0 {
		slots = append(slots, focusSlot{kind: focusVehicle})
	}
	return append(slots, focusSlot{kind: focusSubmit})
}

// Init starts the cursor blinking in the first field.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Values returns the committed value of every field by ID.
func (m Model) Values() map[string]numeric.Value {
	values := make(map[string]numeric.Value, len(m.fields))
	for _, f := range m.fields {
		values[f.ID()] = f.Value()
	}
	return values
}

func (m Model) Field(id string) (numberfield.Model, bool) {
	for _, f := range m.fields {
		if f.ID() == id {
			return f, true
		}
	}
	return numberfield.Model{}, false
}

func (m Model) Insurance() bool         { return m.insurance.Checked() }
func (m Model) Submitting() bool        { return m.submitting }
func (m Model) Quitting() bool          { return m.quitting }
func (m Model) Notices() []ports.Notice { return m.toasts.Notices() }

// Booked returns the last confirmed booking.
func (m Model) Booked() (Booking, bool) {
	if m.booked == nil {
		return Booking{}, false
	}
	return *m.booked, true
}

func (m Model) current() focusSlot {
	if len(m.slots) == 0 {
		return focusSlot{kind: focusSubmit}
	}
	return m.slots[m.focus]
}

// Completion counts the inputs that hold a value: every field plus the
// vehicle choice when vehicles are offered.
func (m Model) Completion() (done, total int) {
	for _, f := range m.fields {
		if f.Value().IsSet() {
			done++
		}
		total++
	}
	if len(m.vehicles.Options()) > 0 {
		total++
		if _, ok := m.vehicles.Selected(); ok {
			done++
		}
	}
	return done, total
}

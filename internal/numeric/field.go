package numeric

// Event names what drove a Field transition.
type Event int

const (
	EventEdit Event = iota
	EventBlur
	EventStep
)

func (e Event) String() string {
	switch e {
	case EventEdit:
		return "edit"
	case EventBlur:
		return "blur"
	case EventStep:
		return "step"
	default:
		return "unknown"
	}
}

// Result classifies the outcome of an event.
type Result int

const (
	// ResultRejected: the edit did not parse; display and value are unchanged.
	ResultRejected Result = iota
	// ResultPending: in-progress text was kept; no value was committed.
	ResultPending
	// ResultCommitted: the edit committed a new value.
	ResultCommitted
	// ResultUnchanged: the event left the committed value as it was.
	ResultUnchanged
	// ResultCorrected: blur clamped the value into range.
	ResultCorrected
	// ResultStepped: a step was applied.
	ResultStepped
	// ResultRefused: a step would have crossed a bound.
	ResultRefused
)

func (r Result) String() string {
	switch r {
	case ResultRejected:
		return "rejected"
	case ResultPending:
		return "pending"
	case ResultCommitted:
		return "committed"
	case ResultUnchanged:
		return "unchanged"
	case ResultCorrected:
		return "corrected"
	case ResultStepped:
		return "stepped"
	case ResultRefused:
		return "refused"
	default:
		return "unknown"
	}
}

// Outcome describes one transition. Value is the committed value afterwards.
type Outcome struct {
	Event  Event
	Result Result
	Value  Value
}

// Changed reports whether the committed value must be emitted upstream.
func (o Outcome) Changed() bool {
	switch o.Result {
	case ResultCommitted, ResultCorrected, ResultStepped:
		return true
	default:
		return false
	}
}

// Field is the state of one numeric input: the displayed text, the last
// committed value and the constraints it was mounted with.
type Field struct {
	display     string
	value       Value
	constraints Constraints
}

// NewField mounts a field showing the canonical text of initial.
func NewField(initial Value, c Constraints) Field {
	return Field{
		display:     initial.String(),
		value:       initial,
		constraints: c.Normalize(),
	}
}

// Display returns the text the host text box must show.
func (f Field) Display() string {
	return f.display
}

// Value returns the committed value.
func (f Field) Value() Value {
	return f.value
}

// Constraints returns the normalized constraints.
func (f Field) Constraints() Constraints {
	return f.constraints
}

// Edit applies a raw string reported by the host text box.
func (f Field) Edit(raw string) (Field, Outcome) {
	text, ok := Filter(raw, f.constraints)
	if !ok {
		return f, Outcome{Event: EventEdit, Result: ResultRejected, Value: f.value}
	}

	next := f
	next.display = text

	live := ResolveLiveEdit(text)
	if live.Pending {
		return next, Outcome{Event: EventEdit, Result: ResultPending, Value: f.value}
	}

	next.value = live.Value
	if live.Value.Equal(f.value) {
		return next, Outcome{Event: EventEdit, Result: ResultUnchanged, Value: next.value}
	}
	return next, Outcome{Event: EventEdit, Result: ResultCommitted, Value: next.value}
}

// Blur settles the field. In-progress text commits its prefix ("-" is
// Unset, "3." is 3), then the value is clamped into range. Committed text
// such as "07" is left as typed unless it was clamped.
func (f Field) Blur() (Field, Outcome) {
	next := f
	if f.display != "" && InProgress(f.display) {
		next.value = SettlePending(f.display)
		next.display = next.value.String()
	}

	final, corrected := ResolveOnBlur(next.value, f.constraints)
	if corrected {
		next.value = final
		next.display = final.String()
		return next, Outcome{Event: EventBlur, Result: ResultCorrected, Value: final}
	}
	if !next.value.Equal(f.value) {
		return next, Outcome{Event: EventBlur, Result: ResultCommitted, Value: next.value}
	}
	return next, Outcome{Event: EventBlur, Result: ResultUnchanged, Value: next.value}
}

// Step applies a signed step to the committed value.
func (f Field) Step(dir Direction) (Field, Outcome) {
	stepped, ok := Step(dir, f.value, f.constraints)
	if !ok {
		return f, Outcome{Event: EventStep, Result: ResultRefused, Value: f.value}
	}

	next := f
	next.value = stepped
	next.display = stepped.String()
	return next, Outcome{Event: EventStep, Result: ResultStepped, Value: stepped}
}

// CanIncrement reports whether an increment would be applied.
func (f Field) CanIncrement() bool {
	return CanStep(Increment, f.value, f.constraints)
}

// CanDecrement reports whether a decrement would be applied.
func (f Field) CanDecrement() bool {
	return CanStep(Decrement, f.value, f.constraints)
}

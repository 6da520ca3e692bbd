package numeric

// Direction is a signed unit step.
type Direction int

const (
	Decrement Direction = -1
	Increment Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	default:
		return "invalid"
	}
}

// Step moves current by one step in dir. An unset (or non-finite) current
// value starts from zero. A step that would still be short of the range
// lands on the bound it is heading to, so stepping from Unset with min 5
// gives 5 and stepping down from a typed 100 with max 50 gives 50. A step
// whose result would cross the bound in its direction is refused and
// current is returned unchanged.
func Step(dir Direction, current Value, c Constraints) (Value, bool) {
	candidate, ok := stepCandidate(dir, current, c)
	if !ok {
		return current, false
	}
	return Of(candidate), true
}

// CanStep reports whether Step would be applied. Step controls use it as
// their enabled predicate.
func CanStep(dir Direction, current Value, c Constraints) bool {
	_, ok := stepCandidate(dir, current, c)
	return ok
}

func stepCandidate(dir Direction, current Value, c Constraints) (float64, bool) {
	if dir != Increment && dir != Decrement {
		return 0, false
	}
	c = c.Normalize()

	base := 0.0
	if current.Finite() {
		base, _ = current.Float()
	}

	candidate := base + float64(dir)*c.Step
	if dir == Increment && c.Min != nil && candidate < *c.Min {
		candidate = *c.Min
	}
	if dir == Decrement && c.Max != nil && candidate > *c.Max {
		candidate = *c.Max
	}

	if dir == Increment && c.Max != nil && candidate > *c.Max {
		return 0, false
	}
	if dir == Decrement && c.Min != nil && candidate < *c.Min {
		return 0, false
	}
	return candidate, true
}

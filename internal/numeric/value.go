package numeric

import (
	"math"
	"strconv"
)

// Value is a committed number or the Unset sentinel.
type Value struct {
	n   float64
	set bool
}

// Unset is the empty value. It is distinct from zero and from NaN.
var Unset = Value{}

// Of wraps n as a set Value.
func Of(n float64) Value {
	return Value{n: n, set: true}
}

// IsSet reports whether v holds a number.
func (v Value) IsSet() bool {
	return v.set
}

// Float returns the held number and whether v is set.
func (v Value) Float() (float64, bool) {
	return v.n, v.set
}

// Finite reports whether v is set to a finite number.
func (v Value) Finite() bool {
	return v.set && isFinite(v.n)
}

// Equal reports whether both values are unset or hold the same number.
func (v Value) Equal(other Value) bool {
	if v.set != other.set {
		return false
	}
	return !v.set || v.n == other.n
}

// String returns the canonical display text, "" for Unset.
func (v Value) String() string {
	if !v.set {
		return ""
	}
	if v.n == 0 {
		return "0"
	}
	return strconv.FormatFloat(v.n, 'f', -1, 64)
}

func isFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

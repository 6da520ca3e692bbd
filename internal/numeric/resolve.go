package numeric

import "strings"

// LiveResult is the outcome of resolving filtered text while typing.
type LiveResult struct {
	Value Value
	// Pending marks in-progress text; the previous committed value stands.
	Pending bool
}

// ResolveLiveEdit maps filtered text to a committed value. No range check is
// applied; out-of-range values are only corrected on blur.
func ResolveLiveEdit(text string) LiveResult {
	if text == "" {
		return LiveResult{Value: Unset}
	}
	if InProgress(text) {
		return LiveResult{Value: Unset, Pending: true}
	}
	n, ok := parseFinite(text)
	if !ok {
		return LiveResult{Value: Unset, Pending: true}
	}
	return LiveResult{Value: Of(n)}
}

// SettlePending resolves in-progress text for good: "" and "-" are Unset,
// digits with a trailing dot are the digits. Any other text resolves as a
// live edit would.
func SettlePending(text string) Value {
	if text == "" || text == "-" {
		return Unset
	}
	if InProgress(text) {
		text = strings.TrimSuffix(text, ".")
	}
	n, ok := parseFinite(text)
	if !ok {
		return Unset
	}
	return Of(n)
}

// ResolveOnBlur clamps a committed value into the supplied bound(s).
// Unset and non-finite values pass through uncorrected.
func ResolveOnBlur(v Value, c Constraints) (Value, bool) {
	if !v.Finite() {
		return v, false
	}
	n, _ := v.Float()
	clamped := c.clamp(n)
	if clamped == n {
		return v, false
	}
	return Of(clamped), true
}

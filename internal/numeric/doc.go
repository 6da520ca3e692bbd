// Package numeric interprets keystroke text for constrained number fields.
//
// A Field turns the raw text reported by a host text box into a committed
// Value while enforcing sign, decimal and range constraints. Three events
// drive it:
//
//   - Edit: the raw string is filtered; malformed text is rejected, in-progress
//     text ("", "-", "3.") is kept without committing, anything else commits
//     the parsed number with no range check.
//   - Blur: the committed value is clamped into [Min, Max].
//   - Step: the committed value moves by Step, refusing (not clamping) a step
//     that would cross the bound in its direction.
//
// Every event returns a new Field; nothing here blocks, allocates shared
// state or returns errors.
package numeric
